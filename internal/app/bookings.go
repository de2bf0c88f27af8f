package app

import (
	"context"

	"staybook/internal/domain"
)

const bookingResource = "Booking"

type BookingService struct {
	repo domain.BookingRepository
}

func NewBookingService(r domain.BookingRepository) *BookingService {
	return &BookingService{repo: r}
}

func (s *BookingService) List(ctx context.Context, f domain.BookingFilter) ([]domain.Booking, error) {
	bs, err := s.repo.ListBookings(ctx, f)
	if err != nil {
		return nil, err
	}
	return orEmpty(bs), nil
}

func (s *BookingService) Get(ctx context.Context, id string) (domain.Booking, error) {
	b, err := s.repo.GetBooking(ctx, id)
	if err != nil {
		return domain.Booking{}, readErr(err, bookingResource, id)
	}
	return b, nil
}

func (s *BookingService) Create(ctx context.Context, in domain.BookingInput) (domain.Booking, error) {
	b := bookingFromInput(newID(), in)
	if err := s.repo.CreateBooking(ctx, b); err != nil {
		return domain.Booking{}, writeErr(err, bookingResource)
	}
	return b, nil
}

func (s *BookingService) Update(ctx context.Context, id string, in domain.BookingInput) (domain.Confirmation, error) {
	n, err := s.repo.UpdateBooking(ctx, bookingFromInput(id, in))
	if err := affectedOne(n, err, bookingResource, id); err != nil {
		return domain.Confirmation{}, err
	}
	return domain.Updated(bookingResource, id), nil
}

func (s *BookingService) Delete(ctx context.Context, id string) (string, error) {
	n, err := s.repo.DeleteBooking(ctx, id)
	if err := affectedOne(n, err, bookingResource, id); err != nil {
		return "", err
	}
	return id, nil
}

func bookingFromInput(id string, in domain.BookingInput) domain.Booking {
	return domain.Booking{
		ID:             id,
		UserID:         in.UserID,
		PropertyID:     in.PropertyID,
		CheckinDate:    in.CheckinDate.UTC(),
		CheckoutDate:   in.CheckoutDate.UTC(),
		NumberOfGuests: in.NumberOfGuests,
		TotalPrice:     in.TotalPrice,
		BookingStatus:  in.BookingStatus,
	}
}
