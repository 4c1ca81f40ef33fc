package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"drivebook/internal/domain/booking"
	"drivebook/internal/infra"
	"drivebook/internal/pkg/errs"
	"drivebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingRepository struct {
	db DBTX
}

func NewBookingRepository(db DBTX) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	const query = `
		INSERT INTO bookings (
			id, user_id, course_id, course_title, slot_id,
			slot_date, slot_start_time, slot_end_time,
			form_data, submitted_at, transaction_id, payment_verified
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	formData, err := json.Marshal(b.FormData())
	if err != nil {
		return infra.WrapRepoErr("failed to encode booking form data", err)
	}

	_, err = r.db.Exec(ctx, query,
		b.ID(), b.UserID(), b.CourseID(), b.CourseTitle(), b.SlotID(),
		b.SlotDate(), b.SlotStartTime(), b.SlotEndTime(),
		formData, b.SubmittedAt(), b.TransactionID(), b.PaymentVerified(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	const query = `
		SELECT id, user_id, course_id, course_title, slot_id,
		       slot_date, slot_start_time, slot_end_time,
		       form_data, submitted_at, transaction_id, payment_verified
		FROM bookings WHERE id = $1`

	row, err := scanBookingRow(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, infra.WrapRepoErr("failed to read booking", err)
	}

	return booking.ReconstructBooking(
		row.ID, row.UserID, row.CourseID, row.CourseTitle, row.SlotID,
		row.SlotDate, row.SlotStartTime, row.SlotEndTime,
		row.FormData, row.SubmittedAt, row.TransactionID, row.PaymentVerified,
	), nil
}

// SetPaymentVerified is idempotent; re-verifying an already verified
// booking affects the same row again with the same value.
func (r *BookingRepository) SetPaymentVerified(ctx context.Context, id uuid.UUID) error {
	const query = `UPDATE bookings SET payment_verified = TRUE WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return infra.WrapRepoErr("failed to verify booking payment", err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrBookingNotFound
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read side
// ---------------------------------------------------------------------------

type BookingReadStore struct {
	db DBTX
}

func NewBookingReadStore(db DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

func (s *BookingReadStore) List(ctx context.Context, filter queries.BookingFilter) ([]queries.BookingView, error) {
	query := `
		SELECT id, user_id, course_id, course_title, slot_id,
		       slot_date, slot_start_time, slot_end_time,
		       form_data, submitted_at, transaction_id, payment_verified
		FROM bookings`

	var (
		conds []string
		args  []any
	)
	if filter.CourseID != nil {
		args = append(args, *filter.CourseID)
		conds = append(conds, "course_id = $"+strconv.Itoa(len(args)))
	}
	if filter.PaymentVerified != nil {
		args = append(args, *filter.PaymentVerified)
		conds = append(conds, "payment_verified = $"+strconv.Itoa(len(args)))
	}
	for i, cond := range conds {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY submitted_at DESC"

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var views []queries.BookingView
	for rows.Next() {
		view, err := scanBookingRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		views = append(views, *view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return views, nil
}

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	const query = `
		SELECT id, user_id, course_id, course_title, slot_id,
		       slot_date, slot_start_time, slot_end_time,
		       form_data, submitted_at, transaction_id, payment_verified
		FROM bookings WHERE id = $1`

	view, err := scanBookingRow(s.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, infra.WrapRepoErr("failed to read booking", err)
	}
	return view, nil
}

func scanBookingRow(row pgx.Row) (*queries.BookingView, error) {
	var (
		view    queries.BookingView
		rawForm []byte
	)
	err := row.Scan(
		&view.ID, &view.UserID, &view.CourseID, &view.CourseTitle, &view.SlotID,
		&view.SlotDate, &view.SlotStartTime, &view.SlotEndTime,
		&rawForm, &view.SubmittedAt, &view.TransactionID, &view.PaymentVerified,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(rawForm, &view.FormData); err != nil {
		return nil, err
	}
	return &view, nil
}
