package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/ventas-api/internal/domain"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
// Solo tiene sentido dentro de una transacción: el lock de GetForUpdate vive
// hasta el Commit/Rollback de la tx que lo tomó.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// GetForUpdate lee el stock del producto bloqueando la fila (SELECT FOR UPDATE).
// Ventas concurrentes sobre el mismo producto se serializan aquí.
func (r *StockRepo) GetForUpdate(productID string) (int64, error) {
	var stock int64
	err := r.q.QueryRow(context.Background(),
		`SELECT stock FROM products WHERE id = $1 FOR UPDATE`,
		productID,
	).Scan(&stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("get stock for update: %w", err)
	}
	return stock, nil
}

// Adjust suma delta (positivo o negativo) al stock del producto.
func (r *StockRepo) Adjust(productID string, delta int64) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock = stock + $2, updated_at = now() WHERE id = $1`,
		productID, delta,
	)
	if err != nil {
		return fmt.Errorf("adjust stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
