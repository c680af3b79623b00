package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/stpnv0/EventBackend/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const (
	bookingColumns = `id, event_id, first_name, last_name, email, tel, spots, created_at`

	uniqueViolation = "23505"
)

var errDuplicateBooking = errors.New("duplicate booking id")

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB, strategy retry.Strategy) *BookingRepository {
	return &BookingRepository{
		db:       db,
		strategy: strategy,
	}
}

// Create inserts the booking only if the event still has room for it.
// The capacity read and the insert run under the event row lock, so two
// concurrent bookings cannot both take the last spots.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	usage := domain.CapacityUsage{EventID: b.EventID}
	if err = tx.QueryRowContext(ctx,
		`SELECT capacity FROM events WHERE id = $1 FOR UPDATE`, b.EventID,
	).Scan(&usage.Capacity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("lock event: %w", err)
	}

	if err = tx.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(spots), 0) FROM bookings WHERE event_id = $1`, b.EventID,
	).Scan(&usage.Reserved); err != nil {
		return fmt.Errorf("sum spots: %w", err)
	}

	if !usage.Fits(b.Spots) {
		return domain.ErrNotEnoughSpots
	}

	query := `INSERT INTO bookings (` + bookingColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = tx.ExecContext(
		ctx, query, b.ID, b.EventID, b.FirstName, b.LastName,
		b.Email, b.Tel, b.Spots, b.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return errDuplicateBooking
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	if _, err = tx.ExecContext(ctx,
		`UPDATE events SET version = version + 1 WHERE id = $1`, b.EventID,
	); err != nil {
		return fmt.Errorf("bump event version: %w", err)
	}

	return tx.Commit()
}

func (r *BookingRepository) GetByEventAndID(ctx context.Context, eventID, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE event_id = $1 AND id = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
              FROM bookings
              WHERE event_id = $1
              ORDER BY created_at, id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by event: %w", err)
	}
	defer rows.Close()

	res := make([]*domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking by event: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

func (r *BookingRepository) DeleteByEventAndID(ctx context.Context, eventID, id string) (*domain.Booking, error) {
	query := `DELETE FROM bookings WHERE event_id = $1 AND id = $2 RETURNING ` + bookingColumns

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID, id)
	if err != nil {
		return nil, fmt.Errorf("delete booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) SumSpots(ctx context.Context, eventID string) (int, error) {
	query := `SELECT COALESCE(SUM(spots), 0) FROM bookings WHERE event_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return 0, fmt.Errorf("sum spots: %w", err)
	}

	var total int
	if err = row.Scan(&total); err != nil {
		return 0, fmt.Errorf("scan sum: %w", err)
	}

	return total, nil
}

func (r *BookingRepository) ListOverbooked(ctx context.Context) ([]domain.CapacityUsage, error) {
	query := `
        SELECT e.id, e.capacity, COALESCE(SUM(b.spots), 0) AS reserved
        FROM events e
        LEFT JOIN bookings b ON b.event_id = e.id
        GROUP BY e.id, e.capacity
        HAVING COALESCE(SUM(b.spots), 0) > e.capacity
        ORDER BY e.id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list overbooked: %w", err)
	}
	defer rows.Close()

	var res []domain.CapacityUsage
	for rows.Next() {
		var u domain.CapacityUsage
		if err = rows.Scan(&u.EventID, &u.Capacity, &u.Reserved); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		res = append(res, u)
	}

	return res, rows.Err()
}

func scanBooking(s scanner) (*domain.Booking, error) {
	var b domain.Booking
	if err := s.Scan(
		&b.ID, &b.EventID, &b.FirstName, &b.LastName,
		&b.Email, &b.Tel, &b.Spots, &b.CreatedAt,
	); err != nil {
		return nil, err
	}
	b.CreatedAt = b.CreatedAt.UTC()
	return &b, nil
}
