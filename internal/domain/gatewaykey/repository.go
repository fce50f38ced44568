package gatewaykey

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository handles gateway key persistence
type Repository interface {
	ListActive(ctx context.Context) ([]*Key, error)
	Create(ctx context.Context, key string) (*Key, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// ListActive returns active keys newest first. The storefront reads the
// first element, so rotation is: insert the new key, deactivate the old.
func (r *repository) ListActive(ctx context.Context) ([]*Key, error) {
	var keys []*Key
	err := r.db.SelectContext(ctx, &keys, `
		SELECT id, key, active, created_at FROM gateway_keys
		WHERE active = TRUE
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list gateway keys: %w", err)
	}
	return keys, nil
}

func (r *repository) Create(ctx context.Context, key string) (*Key, error) {
	k := &Key{
		ID:        uuid.New(),
		Key:       key,
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO gateway_keys (id, key, active, created_at)
		VALUES ($1, $2, $3, $4)`,
		k.ID, k.Key, k.Active, k.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert gateway key: %w", err)
	}
	return k, nil
}

func (r *repository) Deactivate(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE gateway_keys SET active = FALSE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate gateway key: %w", err)
	}
	return nil
}
