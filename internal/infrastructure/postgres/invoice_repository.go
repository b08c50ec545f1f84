package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/ventas-api/internal/domain"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `
	i.id, i.sale_id, i.customer_id, i.invoice_date, i.total_amount, i.status,
	i.created_at, i.updated_at, COALESCE(c.name, '')`

const invoiceJoins = `
	FROM invoices i
	LEFT JOIN customers c ON c.id = i.customer_id`

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := row.Scan(
		&inv.ID, &inv.SaleID, &inv.CustomerID, &inv.InvoiceDate, &inv.TotalAmount, &inv.Status,
		&inv.CreatedAt, &inv.UpdatedAt, &inv.CustomerName,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// Create persiste la cabecera de la factura. sale_id tiene constraint único:
// a lo sumo una factura por venta.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (id, sale_id, customer_id, invoice_date, total_amount, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.SaleID, invoice.CustomerID, invoice.InvoiceDate,
		invoice.TotalAmount, invoice.Status, invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// CreateItem persiste un renglón de la factura.
func (r *InvoiceRepo) CreateItem(item *entity.InvoiceItem) error {
	query := `
		INSERT INTO invoice_items (id, invoice_id, product_id, quantity, unit_price, item_total)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.InvoiceID, item.ProductID, item.Quantity, item.UnitPrice, item.ItemTotal,
	)
	if err != nil {
		return fmt.Errorf("insert invoice item: %w", err)
	}
	return nil
}

// GetByID obtiene la factura con renglones y nombre del cliente.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + invoiceJoins + ` WHERE i.id = $1`
	inv, err := scanInvoice(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	items, err := r.itemsByInvoiceIDs([]string{id})
	if err != nil {
		return nil, err
	}
	inv.Items = items[id]
	return inv, nil
}

// GetBySaleID busca la factura asociada a una venta; nil si no existe.
func (r *InvoiceRepo) GetBySaleID(saleID string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + invoiceJoins + ` WHERE i.sale_id = $1`
	inv, err := scanInvoice(r.q.QueryRow(context.Background(), query, saleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice by sale: %w", err)
	}
	return inv, nil
}

// Update actualiza los campos editables de la factura.
func (r *InvoiceRepo) Update(invoice *entity.Invoice) error {
	query := `
		UPDATE invoices
		SET customer_id = $2, invoice_date = $3, total_amount = $4, status = $5, updated_at = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.CustomerID, invoice.InvoiceDate, invoice.TotalAmount,
		invoice.Status, invoice.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteItems elimina todos los renglones de la factura.
func (r *InvoiceRepo) DeleteItems(invoiceID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM invoice_items WHERE invoice_id = $1`, invoiceID)
	if err != nil {
		return fmt.Errorf("delete invoice items: %w", err)
	}
	return nil
}

// Delete elimina la cabecera de la factura.
func (r *InvoiceRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}

// List lista facturas paginadas, más recientes primero, buscando por nombre de cliente.
func (r *InvoiceRepo) List(search string, limit, offset int) ([]*entity.Invoice, int, error) {
	where := "TRUE"
	args := []any{}
	if search != "" {
		args = append(args, "%"+search+"%")
		where = "COALESCE(c.name, '') ILIKE $1"
	}

	var total int
	if err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*)`+invoiceJoins+` WHERE `+where, args...,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count invoices: %w", err)
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT %s %s WHERE %s ORDER BY i.invoice_date DESC LIMIT $%d OFFSET $%d`,
		invoiceColumns, invoiceJoins, where, len(args)-1, len(args))
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var list []*entity.Invoice
	var ids []string
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
		ids = append(ids, inv.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if len(ids) > 0 {
		itemsByInvoice, err := r.itemsByInvoiceIDs(ids)
		if err != nil {
			return nil, 0, err
		}
		for _, inv := range list {
			inv.Items = itemsByInvoice[inv.ID]
		}
	}
	return list, total, nil
}

func (r *InvoiceRepo) itemsByInvoiceIDs(invoiceIDs []string) (map[string][]entity.InvoiceItem, error) {
	query := `
		SELECT ii.id, ii.invoice_id, ii.product_id, ii.quantity, ii.unit_price, ii.item_total, COALESCE(p.name, '')
		FROM invoice_items ii
		LEFT JOIN products p ON p.id = ii.product_id
		WHERE ii.invoice_id = ANY($1)
		ORDER BY ii.id`
	rows, err := r.q.Query(context.Background(), query, invoiceIDs)
	if err != nil {
		return nil, fmt.Errorf("list invoice items: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]entity.InvoiceItem, len(invoiceIDs))
	for rows.Next() {
		var it entity.InvoiceItem
		if err := rows.Scan(&it.ID, &it.InvoiceID, &it.ProductID, &it.Quantity, &it.UnitPrice, &it.ItemTotal, &it.ProductName); err != nil {
			return nil, fmt.Errorf("scan invoice item: %w", err)
		}
		out[it.InvoiceID] = append(out[it.InvoiceID], it)
	}
	return out, rows.Err()
}
