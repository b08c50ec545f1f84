package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera de la venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, customer_id, notes, total_amount, sale_date)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.CustomerID, nullIfEmpty(sale.Notes), sale.TotalAmount, sale.SaleDate,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateItem persiste un renglón de la venta.
func (r *SaleRepo) CreateItem(item *entity.SaleItem) error {
	query := `
		INSERT INTO sale_items (id, sale_id, product_id, quantity, unit_price, item_total)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.SaleID, item.ProductID, item.Quantity, item.UnitPrice, item.ItemTotal,
	)
	if err != nil {
		return fmt.Errorf("insert sale item: %w", err)
	}
	return nil
}

// GetByID obtiene la venta con sus renglones y los nombres de cliente y productos.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `
		SELECT s.id, s.customer_id, COALESCE(s.notes, ''), s.total_amount, s.sale_date, COALESCE(c.name, '')
		FROM sales s
		LEFT JOIN customers c ON c.id = s.customer_id
		WHERE s.id = $1`
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.CustomerID, &s.Notes, &s.TotalAmount, &s.SaleDate, &s.CustomerName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	items, err := r.itemsBySaleIDs([]string{id})
	if err != nil {
		return nil, err
	}
	s.Items = items[id]
	return &s, nil
}

// UpdateHeader actualiza cliente, notas y total de la venta.
func (r *SaleRepo) UpdateHeader(sale *entity.Sale) error {
	query := `
		UPDATE sales SET customer_id = $2, notes = $3, total_amount = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.CustomerID, nullIfEmpty(sale.Notes), sale.TotalAmount,
	)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	return nil
}

// DeleteItems elimina todos los renglones de la venta.
func (r *SaleRepo) DeleteItems(saleID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM sale_items WHERE sale_id = $1`, saleID)
	if err != nil {
		return fmt.Errorf("delete sale items: %w", err)
	}
	return nil
}

// Delete elimina la cabecera de la venta.
func (r *SaleRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	return nil
}

// List lista ventas paginadas, más recientes primero. El filtro aplica sobre
// el nombre del cliente y los nombres de producto de los renglones.
func (r *SaleRepo) List(params repository.ListSalesParams) ([]*entity.Sale, int, error) {
	where := "TRUE"
	args := []any{}
	if params.Search != "" {
		args = append(args, "%"+params.Search+"%")
		where = `(COALESCE(c.name, '') ILIKE $1 OR EXISTS (
			SELECT 1 FROM sale_items si
			JOIN products p ON p.id = si.product_id
			WHERE si.sale_id = s.id AND p.name ILIKE $1))`
	}

	var total int
	countQuery := `
		SELECT COUNT(*)
		FROM sales s
		LEFT JOIN customers c ON c.id = s.customer_id
		WHERE ` + where
	if err := r.q.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count sales: %w", err)
	}

	args = append(args, params.Limit, params.Offset)
	query := fmt.Sprintf(`
		SELECT s.id, s.customer_id, COALESCE(s.notes, ''), s.total_amount, s.sale_date, COALESCE(c.name, '')
		FROM sales s
		LEFT JOIN customers c ON c.id = s.customer_id
		WHERE %s
		ORDER BY s.sale_date DESC
		LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var list []*entity.Sale
	var ids []string
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.CustomerID, &s.Notes, &s.TotalAmount, &s.SaleDate, &s.CustomerName); err != nil {
			return nil, 0, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
		ids = append(ids, s.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if len(ids) > 0 {
		itemsBySale, err := r.itemsBySaleIDs(ids)
		if err != nil {
			return nil, 0, err
		}
		for _, s := range list {
			s.Items = itemsBySale[s.ID]
		}
	}
	return list, total, nil
}

// itemsBySaleIDs carga los renglones de un conjunto de ventas con el nombre del producto.
func (r *SaleRepo) itemsBySaleIDs(saleIDs []string) (map[string][]entity.SaleItem, error) {
	query := `
		SELECT si.id, si.sale_id, si.product_id, si.quantity, si.unit_price, si.item_total, COALESCE(p.name, '')
		FROM sale_items si
		LEFT JOIN products p ON p.id = si.product_id
		WHERE si.sale_id = ANY($1)
		ORDER BY si.id`
	rows, err := r.q.Query(context.Background(), query, saleIDs)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]entity.SaleItem, len(saleIDs))
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ID, &it.SaleID, &it.ProductID, &it.Quantity, &it.UnitPrice, &it.ItemTotal, &it.ProductName); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		out[it.SaleID] = append(out[it.SaleID], it)
	}
	return out, rows.Err()
}
