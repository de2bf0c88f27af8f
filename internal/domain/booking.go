package domain

import "time"

type Booking struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	PropertyID     string    `json:"propertyId"`
	CheckinDate    time.Time `json:"checkinDate"`
	CheckoutDate   time.Time `json:"checkoutDate"`
	NumberOfGuests int       `json:"numberOfGuests"`
	TotalPrice     float64   `json:"totalPrice"`
	BookingStatus  string    `json:"bookingStatus"`
}

type BookingInput struct {
	UserID         string    `json:"userId" validate:"required"`
	PropertyID     string    `json:"propertyId" validate:"required"`
	CheckinDate    time.Time `json:"checkinDate" validate:"required"`
	CheckoutDate   time.Time `json:"checkoutDate" validate:"required,gtfield=CheckinDate"`
	NumberOfGuests int       `json:"numberOfGuests" validate:"gte=1"`
	TotalPrice     float64   `json:"totalPrice" validate:"gte=0"`
	BookingStatus  string    `json:"bookingStatus" validate:"required,max=64"`
}

type BookingFilter struct {
	UserID string
}
