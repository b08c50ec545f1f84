package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/ventas-api/internal/domain"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `
	p.id, p.name, p.description, p.stock, p.condition,
	p.cost, p.price_client, p.price_wholesale, p.price_technician,
	p.provider_id, p.image_path, p.entry_date, p.warranty_expires_on,
	p.is_active, p.created_at, p.updated_at, COALESCE(pr.name, '')`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var imagePath *string
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Stock, &p.Condition,
		&p.Cost, &p.PriceClient, &p.PriceWholesale, &p.PriceTechnician,
		&p.ProviderID, &imagePath, &p.EntryDate, &p.WarrantyExpiresOn,
		&p.IsActive, &p.CreatedAt, &p.UpdatedAt, &p.ProviderName,
	)
	if err != nil {
		return nil, err
	}
	p.ImagePath = derefStr(imagePath)
	return &p, nil
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, description, stock, condition, cost, price_client, price_wholesale, price_technician, provider_id, image_path, entry_date, warranty_expires_on, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Stock, product.Condition,
		product.Cost, product.PriceClient, product.PriceWholesale, product.PriceTechnician,
		product.ProviderID, nullIfEmpty(product.ImagePath), product.EntryDate, product.WarrantyExpiresOn,
		product.IsActive, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID con el nombre del proveedor.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p
		LEFT JOIN providers pr ON pr.id = p.provider_id
		WHERE p.id = $1`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Update actualiza un producto existente. Stock se actualiza aquí solo en
// ediciones manuales del catálogo; las ventas pasan por StockRepo.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, stock = $4, condition = $5,
		    cost = $6, price_client = $7, price_wholesale = $8, price_technician = $9,
		    provider_id = $10, entry_date = $11, warranty_expires_on = $12, updated_at = $13
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Stock, product.Condition,
		product.Cost, product.PriceClient, product.PriceWholesale, product.PriceTechnician,
		product.ProviderID, product.EntryDate, product.WarrantyExpiresOn, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateImagePath asocia la ruta de imagen al producto.
func (r *ProductRepo) UpdateImagePath(id, imagePath string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET image_path = $2, updated_at = now() WHERE id = $1`,
		id, imagePath,
	)
	if err != nil {
		return fmt.Errorf("update product image: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Deactivate baja lógica del producto.
func (r *ProductRepo) Deactivate(id string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET is_active = FALSE, updated_at = now() WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("deactivate product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista productos activos con búsqueda, filtro de bajo stock, orden y paginación.
func (r *ProductRepo) List(params repository.ListProductsParams) ([]*entity.Product, int, error) {
	where := []string{"p.is_active = TRUE"}
	args := []any{}

	if params.Search != "" {
		args = append(args, "%"+params.Search+"%")
		where = append(where, fmt.Sprintf("(p.name ILIKE $%d OR p.description ILIKE $%d)", len(args), len(args)))
	}
	if params.OnlyLowStock {
		args = append(args, params.LowStockThreshold)
		where = append(where, fmt.Sprintf("p.stock < $%d", len(args)))
	}
	whereClause := strings.Join(where, " AND ")

	var total int
	countQuery := `SELECT COUNT(*) FROM products p WHERE ` + whereClause
	if err := r.q.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	// StockOrder y PriceOrder llegan validados ("ASC"/"DESC"/"") desde la capa
	// de aplicación; nunca se interpola entrada del usuario.
	orderBy := "p.created_at DESC"
	switch {
	case params.StockOrder != "":
		orderBy = "p.stock " + params.StockOrder
	case params.PriceOrder != "":
		orderBy = "p.price_client " + params.PriceOrder
	}

	args = append(args, params.Limit, params.Offset)
	query := fmt.Sprintf(`
		SELECT %s
		FROM products p
		LEFT JOIN providers pr ON pr.id = p.provider_id
		WHERE %s
		ORDER BY %s
		LIMIT $%d OFFSET $%d`,
		productColumns, whereClause, orderBy, len(args)-1, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, total, rows.Err()
}

// ListLowStock retorna productos activos con stock bajo el umbral, los más bajos primero.
func (r *ProductRepo) ListLowStock(threshold int64) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p
		LEFT JOIN providers pr ON pr.id = p.provider_id
		WHERE p.is_active = TRUE AND p.stock < $1
		ORDER BY p.stock ASC, p.name ASC`
	return r.queryProducts(query, threshold)
}

// ListOutOfStock retorna productos activos con stock en cero o negativo.
func (r *ProductRepo) ListOutOfStock() ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p
		LEFT JOIN providers pr ON pr.id = p.provider_id
		WHERE p.is_active = TRUE AND p.stock <= 0
		ORDER BY p.name ASC`
	return r.queryProducts(query)
}

// CountLowStock cuenta productos activos con stock positivo pero bajo el umbral.
func (r *ProductRepo) CountLowStock(threshold int64) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM products WHERE is_active = TRUE AND stock > 0 AND stock < $1`,
		threshold,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count low stock: %w", err)
	}
	return count, nil
}

// TotalInventoryValue suma stock × costo de los productos activos.
func (r *ProductRepo) TotalInventoryValue() (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(stock * cost), 0) FROM products WHERE is_active = TRUE`,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("total inventory value: %w", err)
	}
	return total, nil
}

func (r *ProductRepo) queryProducts(query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
