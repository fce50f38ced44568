package pricing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var ErrRangeNotFound = errors.New("price range not found")

// Repository defines price table data access
type Repository interface {
	GetTable(ctx context.Context, roomID uuid.UUID) (*Table, error)
	ReplaceBasePrices(ctx context.Context, roomID uuid.UUID, basePrices [12]float64) error
	AddRange(ctx context.Context, roomID uuid.UUID, monthIndex int, r *Range) error
	DeleteRange(ctx context.Context, roomID, rangeID uuid.UUID) error
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates pricing repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

type basePriceRow struct {
	Month     int     `db:"month"`
	BasePrice float64 `db:"base_price"`
}

type rangeRow struct {
	ID        uuid.UUID `db:"id"`
	Month     int       `db:"month"`
	StartDate time.Time `db:"start_date"`
	EndDate   time.Time `db:"end_date"`
	Price     float64   `db:"price"`
}

// GetTable assembles the 12-bucket table for a room. Months without a
// stored base price come back as zero, matching a freshly created room.
func (r *repository) GetTable(ctx context.Context, roomID uuid.UUID) (*Table, error) {
	var bases []basePriceRow
	err := r.db.SelectContext(ctx, &bases, `
		SELECT month, base_price FROM room_prices WHERE room_id = $1
	`, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to load base prices: %w", err)
	}

	var ranges []rangeRow
	err = r.db.SelectContext(ctx, &ranges, `
		SELECT id, month, start_date, end_date, price
		FROM price_ranges
		WHERE room_id = $1
		ORDER BY month, position, created_at
	`, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to load price ranges: %w", err)
	}

	var table Table
	for _, b := range bases {
		if b.Month < 1 || b.Month > 12 {
			continue
		}
		table.Months[b.Month-1].BasePrice = b.BasePrice
	}
	for _, row := range ranges {
		if row.Month < 1 || row.Month > 12 {
			continue
		}
		m := &table.Months[row.Month-1]
		m.Ranges = append(m.Ranges, Range{
			ID:        row.ID,
			StartDate: row.StartDate,
			EndDate:   row.EndDate,
			Price:     row.Price,
		})
	}

	return &table, nil
}

// ReplaceBasePrices upserts all twelve base prices in one transaction.
func (r *repository) ReplaceBasePrices(ctx context.Context, roomID uuid.UUID, basePrices [12]float64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for i, price := range basePrices {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO room_prices (room_id, month, base_price, updated_at)
			VALUES ($1, $2, $3, NOW())
			ON CONFLICT (room_id, month)
			DO UPDATE SET base_price = EXCLUDED.base_price, updated_at = NOW()
		`, roomID, i+1, price)
		if err != nil {
			return fmt.Errorf("failed to upsert base price for month %d: %w", i+1, err)
		}
	}

	return tx.Commit()
}

func (r *repository) AddRange(ctx context.Context, roomID uuid.UUID, monthIndex int, rng *Range) error {
	if rng.ID == uuid.Nil {
		rng.ID = uuid.New()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO price_ranges (id, room_id, month, start_date, end_date, price, position, created_at)
		VALUES ($1, $2, $3, $4, $5, $6,
			COALESCE((SELECT MAX(position) + 1 FROM price_ranges WHERE room_id = $2 AND month = $3), 0),
			NOW())
	`, rng.ID, roomID, monthIndex+1, rng.StartDate, rng.EndDate, rng.Price)
	if err != nil {
		return fmt.Errorf("failed to insert price range: %w", err)
	}
	return nil
}

func (r *repository) DeleteRange(ctx context.Context, roomID, rangeID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `
		DELETE FROM price_ranges WHERE room_id = $1 AND id = $2
	`, roomID, rangeID)
	if err != nil {
		return fmt.Errorf("failed to delete price range: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return ErrRangeNotFound
	}
	return nil
}
