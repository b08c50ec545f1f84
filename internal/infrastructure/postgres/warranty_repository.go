package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/ventas-api/internal/domain"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
)

var _ repository.WarrantyRepository = (*WarrantyRepo)(nil)

// WarrantyRepo implementación de WarrantyRepository (usable con pool o tx).
type WarrantyRepo struct {
	q Querier
}

// NewWarrantyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWarrantyRepository(q Querier) *WarrantyRepo {
	return &WarrantyRepo{q: q}
}

const warrantyColumns = `
	w.id, w.product_id, w.customer_id, w.start_date, w.end_date,
	COALESCE(w.notes, ''), w.status, w.created_at, w.updated_at,
	COALESCE(p.name, ''), COALESCE(c.name, '')`

const warrantyJoins = `
	FROM warranties w
	LEFT JOIN products p ON p.id = w.product_id
	LEFT JOIN customers c ON c.id = w.customer_id`

func scanWarranty(row pgx.Row) (*entity.Warranty, error) {
	var w entity.Warranty
	err := row.Scan(
		&w.ID, &w.ProductID, &w.CustomerID, &w.StartDate, &w.EndDate,
		&w.Notes, &w.Status, &w.CreatedAt, &w.UpdatedAt,
		&w.ProductName, &w.CustomerName,
	)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// Create persiste una garantía.
func (r *WarrantyRepo) Create(warranty *entity.Warranty) error {
	query := `
		INSERT INTO warranties (id, product_id, customer_id, start_date, end_date, notes, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		warranty.ID, warranty.ProductID, warranty.CustomerID, warranty.StartDate, warranty.EndDate,
		nullIfEmpty(warranty.Notes), warranty.Status, warranty.CreatedAt, warranty.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert warranty: %w", err)
	}
	return nil
}

// GetByID obtiene una garantía con nombres de producto y cliente.
func (r *WarrantyRepo) GetByID(id string) (*entity.Warranty, error) {
	query := `SELECT ` + warrantyColumns + warrantyJoins + ` WHERE w.id = $1`
	w, err := scanWarranty(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warranty: %w", err)
	}
	return w, nil
}

// Update actualiza una garantía existente.
func (r *WarrantyRepo) Update(warranty *entity.Warranty) error {
	query := `
		UPDATE warranties
		SET product_id = $2, customer_id = $3, start_date = $4, end_date = $5,
		    notes = $6, status = $7, updated_at = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		warranty.ID, warranty.ProductID, warranty.CustomerID, warranty.StartDate, warranty.EndDate,
		nullIfEmpty(warranty.Notes), warranty.Status, warranty.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update warranty: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStatus cambia solo el estado de la garantía.
func (r *WarrantyRepo) UpdateStatus(id, status string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE warranties SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update warranty status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una garantía.
func (r *WarrantyRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM warranties WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete warranty: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista garantías paginadas buscando por nombre de producto o cliente.
func (r *WarrantyRepo) List(search string, limit, offset int) ([]*entity.Warranty, int, error) {
	where := "TRUE"
	args := []any{}
	if search != "" {
		args = append(args, "%"+search+"%")
		where = "(COALESCE(p.name, '') ILIKE $1 OR COALESCE(c.name, '') ILIKE $1)"
	}

	var total int
	if err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*)`+warrantyJoins+` WHERE `+where, args...,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count warranties: %w", err)
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT %s %s WHERE %s ORDER BY w.end_date ASC LIMIT $%d OFFSET $%d`,
		warrantyColumns, warrantyJoins, where, len(args)-1, len(args))
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list warranties: %w", err)
	}
	defer rows.Close()

	var list []*entity.Warranty
	for rows.Next() {
		w, err := scanWarranty(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan warranty: %w", err)
		}
		list = append(list, w)
	}
	return list, total, rows.Err()
}

// ListExpired retorna garantías aún activas cuya fecha de fin ya pasó.
func (r *WarrantyRepo) ListExpired(now time.Time) ([]*entity.Warranty, error) {
	query := `SELECT ` + warrantyColumns + warrantyJoins + `
		WHERE w.status = $1 AND w.end_date < $2
		ORDER BY w.end_date ASC`
	rows, err := r.q.Query(context.Background(), query, entity.WarrantyStatusActive, now)
	if err != nil {
		return nil, fmt.Errorf("list expired warranties: %w", err)
	}
	defer rows.Close()

	var list []*entity.Warranty
	for rows.Next() {
		w, err := scanWarranty(rows)
		if err != nil {
			return nil, fmt.Errorf("scan warranty: %w", err)
		}
		list = append(list, w)
	}
	return list, rows.Err()
}
