package domain

import (
	"context"
	"time"
)

// Repositories are the data store gateway. Get returns ErrNoRecord on a miss;
// Update and Delete report the affected-row count and never probe first.
// Create returns ErrMissingReference or ErrDuplicate on constraint failures.

type UserRepository interface {
	ListUsers(ctx context.Context, f UserFilter) ([]User, error)
	GetUser(ctx context.Context, id string) (User, error)
	GetUserByUsername(ctx context.Context, username string) (User, error)
	CreateUser(ctx context.Context, u User) error
	UpdateUser(ctx context.Context, u User) (int64, error)
	DeleteUser(ctx context.Context, id string) (int64, error)
}

type HostRepository interface {
	ListHosts(ctx context.Context, f HostFilter) ([]Host, error)
	GetHost(ctx context.Context, id string) (Host, error)
	CreateHost(ctx context.Context, h Host) error
	UpdateHost(ctx context.Context, h Host) (int64, error)
	DeleteHost(ctx context.Context, id string) (int64, error)
}

type PropertyRepository interface {
	ListProperties(ctx context.Context, f PropertyFilter) ([]Property, error)
	GetProperty(ctx context.Context, id string) (Property, error)
	CreateProperty(ctx context.Context, p Property) error
	UpdateProperty(ctx context.Context, p Property) (int64, error)
	DeleteProperty(ctx context.Context, id string) (int64, error)
}

type AmenityRepository interface {
	ListAmenities(ctx context.Context, f AmenityFilter) ([]Amenity, error)
	GetAmenity(ctx context.Context, id string) (Amenity, error)
	CreateAmenity(ctx context.Context, a Amenity) error
	UpdateAmenity(ctx context.Context, a Amenity) (int64, error)
	DeleteAmenity(ctx context.Context, id string) (int64, error)
}

type BookingRepository interface {
	ListBookings(ctx context.Context, f BookingFilter) ([]Booking, error)
	GetBooking(ctx context.Context, id string) (Booking, error)
	CreateBooking(ctx context.Context, b Booking) error
	UpdateBooking(ctx context.Context, b Booking) (int64, error)
	DeleteBooking(ctx context.Context, id string) (int64, error)
}

type ReviewRepository interface {
	ListReviews(ctx context.Context, f ReviewFilter) ([]Review, error)
	GetReview(ctx context.Context, id string) (Review, error)
	CreateReview(ctx context.Context, r Review) error
	UpdateReview(ctx context.Context, r Review) (int64, error)
	DeleteReview(ctx context.Context, id string) (int64, error)
}

// LoginThrottle counts login attempts per key inside a fixed window.
type LoginThrottle interface {
	Hit(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
	Reset(ctx context.Context, key string) error
}

// TokenIssuer signs session tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID, username string) (string, error)
}
