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

var _ repository.ProviderRepository = (*ProviderRepo)(nil)

// ProviderRepo implementación de ProviderRepository (usable con pool o tx).
type ProviderRepo struct {
	q Querier
}

// NewProviderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProviderRepository(q Querier) *ProviderRepo {
	return &ProviderRepo{q: q}
}

// Create persiste un proveedor.
func (r *ProviderRepo) Create(provider *entity.Provider) error {
	query := `
		INSERT INTO providers (id, name, contact_person, phone, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		provider.ID, provider.Name, provider.ContactPerson, provider.Phone, provider.Email,
		provider.CreatedAt, provider.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert provider: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID.
func (r *ProviderRepo) GetByID(id string) (*entity.Provider, error) {
	query := `
		SELECT id, name, contact_person, phone, email, created_at, updated_at
		FROM providers WHERE id = $1`
	var p entity.Provider
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.ContactPerson, &p.Phone, &p.Email, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get provider: %w", err)
	}
	return &p, nil
}

// Update actualiza un proveedor existente.
func (r *ProviderRepo) Update(provider *entity.Provider) error {
	query := `
		UPDATE providers SET name = $2, contact_person = $3, phone = $4, email = $5, updated_at = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		provider.ID, provider.Name, provider.ContactPerson, provider.Phone, provider.Email, provider.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update provider: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un proveedor. products.provider_id queda en NULL (ON DELETE SET NULL).
func (r *ProviderRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM providers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete provider: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List retorna todos los proveedores ordenados por nombre.
func (r *ProviderRepo) List() ([]*entity.Provider, error) {
	query := `
		SELECT id, name, contact_person, phone, email, created_at, updated_at
		FROM providers ORDER BY name ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list providers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Provider
	for rows.Next() {
		var p entity.Provider
		if err := rows.Scan(&p.ID, &p.Name, &p.ContactPerson, &p.Phone, &p.Email, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan provider: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
