package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/aizah-hospitality/booking-api/internal/domain/availability"
)

// Repository handles booking persistence
type Repository interface {
	List(ctx context.Context) ([]*Booking, error)
	ListByRoom(ctx context.Context, roomName string) ([]*Booking, error)
	CreateIfAvailable(ctx context.Context, b *Booking) error
	UpdateStatusByPaymentID(ctx context.Context, paymentID string, status Status) (bool, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const bookingColumns = `id, roomname, fname, lname, email, phone, city, code,
	checkin, checkout, guests, children, night, price, totalprice,
	payment_id, method, status, created_at`

func (r *repository) List(ctx context.Context) ([]*Booking, error) {
	query := fmt.Sprintf(`SELECT %s FROM bookings ORDER BY created_at DESC`, bookingColumns)

	var bookings []*Booking
	if err := r.db.SelectContext(ctx, &bookings, query); err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

func (r *repository) ListByRoom(ctx context.Context, roomName string) ([]*Booking, error) {
	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE roomname = $1 ORDER BY checkin`, bookingColumns)

	var bookings []*Booking
	if err := r.db.SelectContext(ctx, &bookings, query, roomName); err != nil {
		return nil, fmt.Errorf("failed to list bookings for room: %w", err)
	}
	return bookings, nil
}

// CreateIfAvailable inserts the booking only if its span does not touch an
// existing reservation for the same room. Writers for a room serialize on
// a room-scoped advisory lock: row locks on existing bookings cannot block
// a concurrent insert, so without the advisory lock two simultaneous
// checkouts for the same dates would both pass the availability check and
// both commit. The lock is held to transaction end; the re-read after
// acquiring it sees every previously committed booking.
func (r *repository) CreateIfAvailable(ctx context.Context, b *Booking) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`SELECT pg_advisory_xact_lock(hashtext($1))`, b.RoomName); err != nil {
		return fmt.Errorf("failed to lock room: %w", err)
	}

	type span struct {
		Checkin  time.Time `db:"checkin"`
		Checkout time.Time `db:"checkout"`
	}
	var spans []span
	err = tx.SelectContext(ctx, &spans, `
		SELECT checkin, checkout FROM bookings
		WHERE roomname = $1 AND status <> $2`,
		b.RoomName, StatusPaymentFailed)
	if err != nil {
		return fmt.Errorf("failed to load existing bookings: %w", err)
	}

	intervals := make([]availability.Interval, 0, len(spans))
	for _, s := range spans {
		intervals = append(intervals, availability.Interval{Checkin: s.Checkin, Checkout: s.Checkout})
	}
	if availability.RangeHasConflict(b.Checkin, b.Checkout, intervals) {
		return ErrDatesConflict
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO bookings (id, roomname, fname, lname, email, phone, city, code,
			checkin, checkout, guests, children, night, price, totalprice,
			payment_id, method, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`,
		b.ID, b.RoomName, b.FirstName, b.LastName, b.Email, b.Phone, b.City, b.PostalCode,
		b.Checkin, b.Checkout, b.Guests, b.Children, b.Nights, b.Price, b.TotalPrice,
		b.PaymentID, b.Method, b.Status, b.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit booking: %w", err)
	}
	return nil
}

func (r *repository) UpdateStatusByPaymentID(ctx context.Context, paymentID string, status Status) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE bookings SET status = $1 WHERE payment_id = $2`,
		status, paymentID)
	if err != nil {
		return false, fmt.Errorf("failed to update booking status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return n > 0, nil
}
