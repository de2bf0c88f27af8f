package mysql

import (
	"context"

	"staybook/internal/domain"
)

func (r *Repo) ListBookings(ctx context.Context, f domain.BookingFilter) ([]domain.Booking, error) {
	rows, err := r.db.QueryContext(ctx, listBookingsSQL, f.UserID, f.UserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.UserID, &b.PropertyID, &b.CheckinDate, &b.CheckoutDate,
			&b.NumberOfGuests, &b.TotalPrice, &b.BookingStatus); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *Repo) GetBooking(ctx context.Context, id string) (domain.Booking, error) {
	var b domain.Booking
	err := r.get(ctx, "bookings", getBookingSQL, []any{id},
		&b.ID, &b.UserID, &b.PropertyID, &b.CheckinDate, &b.CheckoutDate,
		&b.NumberOfGuests, &b.TotalPrice, &b.BookingStatus)
	return b, err
}

func (r *Repo) CreateBooking(ctx context.Context, b domain.Booking) error {
	_, err := r.exec(ctx, r.db, "bookings", "create", insertBookingSQL,
		b.ID, b.UserID, b.PropertyID, b.CheckinDate, b.CheckoutDate, b.NumberOfGuests, b.TotalPrice, b.BookingStatus)
	return err
}

func (r *Repo) UpdateBooking(ctx context.Context, b domain.Booking) (int64, error) {
	return r.exec(ctx, r.db, "bookings", "update", updateBookingSQL,
		b.UserID, b.PropertyID, b.CheckinDate, b.CheckoutDate, b.NumberOfGuests, b.TotalPrice, b.BookingStatus, b.ID)
}

func (r *Repo) DeleteBooking(ctx context.Context, id string) (int64, error) {
	return r.exec(ctx, r.db, "bookings", "delete", deleteBookingSQL, id)
}
