package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
)

var _ repository.QuoteRepository = (*QuoteRepo)(nil)

// QuoteRepo implementación de QuoteRepository (usable con pool o tx).
type QuoteRepo struct {
	q Querier
}

// NewQuoteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewQuoteRepository(q Querier) *QuoteRepo {
	return &QuoteRepo{q: q}
}

const quoteColumns = `
	q.id, q.customer_id, q.quote_date, q.valid_until, q.total_amount,
	COALESCE(q.notes, ''), q.status,
	COALESCE(c.name, ''), COALESCE(c.email, ''), COALESCE(c.phone, '')`

const quoteJoins = `
	FROM quotes q
	LEFT JOIN customers c ON c.id = q.customer_id`

func scanQuote(row pgx.Row) (*entity.Quote, error) {
	var q entity.Quote
	err := row.Scan(
		&q.ID, &q.CustomerID, &q.QuoteDate, &q.ValidUntil, &q.TotalAmount,
		&q.Notes, &q.Status,
		&q.CustomerName, &q.CustomerEmail, &q.CustomerPhone,
	)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// Create persiste la cabecera de la cotización.
func (r *QuoteRepo) Create(quote *entity.Quote) error {
	query := `
		INSERT INTO quotes (id, customer_id, quote_date, valid_until, total_amount, notes, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		quote.ID, quote.CustomerID, quote.QuoteDate, quote.ValidUntil, quote.TotalAmount,
		nullIfEmpty(quote.Notes), quote.Status,
	)
	if err != nil {
		return fmt.Errorf("insert quote: %w", err)
	}
	return nil
}

// CreateItem persiste un renglón de la cotización.
func (r *QuoteRepo) CreateItem(item *entity.QuoteItem) error {
	query := `
		INSERT INTO quote_items (id, quote_id, product_id, quantity, unit_price, item_total, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.QuoteID, item.ProductID, item.Quantity, item.UnitPrice, item.ItemTotal,
		nullIfEmpty(item.Notes),
	)
	if err != nil {
		return fmt.Errorf("insert quote item: %w", err)
	}
	return nil
}

// GetByID obtiene la cotización con renglones y datos del cliente.
func (r *QuoteRepo) GetByID(id string) (*entity.Quote, error) {
	query := `SELECT ` + quoteColumns + quoteJoins + ` WHERE q.id = $1`
	quote, err := scanQuote(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quote: %w", err)
	}
	items, err := r.itemsByQuoteIDs([]string{id})
	if err != nil {
		return nil, err
	}
	quote.Items = items[id]
	return quote, nil
}

// UpdateHeader actualiza cliente, vigencia, notas, estado y total.
func (r *QuoteRepo) UpdateHeader(quote *entity.Quote) error {
	query := `
		UPDATE quotes
		SET customer_id = $2, valid_until = $3, total_amount = $4, notes = $5, status = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		quote.ID, quote.CustomerID, quote.ValidUntil, quote.TotalAmount,
		nullIfEmpty(quote.Notes), quote.Status,
	)
	if err != nil {
		return fmt.Errorf("update quote: %w", err)
	}
	return nil
}

// DeleteItems elimina todos los renglones de la cotización.
func (r *QuoteRepo) DeleteItems(quoteID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM quote_items WHERE quote_id = $1`, quoteID)
	if err != nil {
		return fmt.Errorf("delete quote items: %w", err)
	}
	return nil
}

// Delete elimina la cabecera de la cotización.
func (r *QuoteRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM quotes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete quote: %w", err)
	}
	return nil
}

// List lista cotizaciones paginadas, más recientes primero, buscando por nombre de cliente.
func (r *QuoteRepo) List(search string, limit, offset int) ([]*entity.Quote, int, error) {
	where := "TRUE"
	args := []any{}
	if search != "" {
		args = append(args, "%"+search+"%")
		where = "COALESCE(c.name, '') ILIKE $1"
	}

	var total int
	if err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*)`+quoteJoins+` WHERE `+where, args...,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count quotes: %w", err)
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT %s %s WHERE %s ORDER BY q.quote_date DESC LIMIT $%d OFFSET $%d`,
		quoteColumns, quoteJoins, where, len(args)-1, len(args))
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list quotes: %w", err)
	}
	defer rows.Close()

	var list []*entity.Quote
	var ids []string
	for rows.Next() {
		quote, err := scanQuote(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan quote: %w", err)
		}
		list = append(list, quote)
		ids = append(ids, quote.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if len(ids) > 0 {
		itemsByQuote, err := r.itemsByQuoteIDs(ids)
		if err != nil {
			return nil, 0, err
		}
		for _, quote := range list {
			quote.Items = itemsByQuote[quote.ID]
		}
	}
	return list, total, nil
}

func (r *QuoteRepo) itemsByQuoteIDs(quoteIDs []string) (map[string][]entity.QuoteItem, error) {
	query := `
		SELECT qi.id, qi.quote_id, qi.product_id, qi.quantity, qi.unit_price, qi.item_total,
		       COALESCE(qi.notes, ''), COALESCE(p.name, '')
		FROM quote_items qi
		LEFT JOIN products p ON p.id = qi.product_id
		WHERE qi.quote_id = ANY($1)
		ORDER BY qi.id`
	rows, err := r.q.Query(context.Background(), query, quoteIDs)
	if err != nil {
		return nil, fmt.Errorf("list quote items: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]entity.QuoteItem, len(quoteIDs))
	for rows.Next() {
		var it entity.QuoteItem
		if err := rows.Scan(&it.ID, &it.QuoteID, &it.ProductID, &it.Quantity, &it.UnitPrice, &it.ItemTotal, &it.Notes, &it.ProductName); err != nil {
			return nil, fmt.Errorf("scan quote item: %w", err)
		}
		out[it.QuoteID] = append(out[it.QuoteID], it)
	}
	return out, rows.Err()
}
