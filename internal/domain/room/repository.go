package room

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository handles room persistence
type Repository interface {
	List(ctx context.Context) ([]*Room, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Room, error)
	GetBySlug(ctx context.Context, slug string) (*Room, error)
	Create(ctx context.Context, r *Room) error
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]*Room, error) {
	var rooms []*Room
	err := r.db.SelectContext(ctx, &rooms,
		`SELECT id, slug, name, created_at FROM rooms ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Room, error) {
	var room Room
	err := r.db.GetContext(ctx, &room,
		`SELECT id, slug, name, created_at FROM rooms WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}
	return &room, nil
}

func (r *repository) GetBySlug(ctx context.Context, slug string) (*Room, error) {
	var room Room
	err := r.db.GetContext(ctx, &room,
		`SELECT id, slug, name, created_at FROM rooms WHERE slug = $1`, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room by slug: %w", err)
	}
	return &room, nil
}

func (r *repository) Create(ctx context.Context, room *Room) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO rooms (id, slug, name, created_at)
		VALUES ($1, $2, $3, $4)`,
		room.ID, room.Slug, room.Name, room.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert room: %w", err)
	}
	return nil
}
