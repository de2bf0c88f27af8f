package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"staybook/internal/domain"
)

// SeedOrder lists seed resources parents first so foreign keys resolve.
var SeedOrder = []string{"users", "hosts", "amenities", "properties", "bookings", "reviews"}

// SeedRepository is the union of gateways the seeder writes to.
type SeedRepository interface {
	CreateUser(ctx context.Context, u domain.User) error
	CreateHost(ctx context.Context, h domain.Host) error
	CreateAmenity(ctx context.Context, a domain.Amenity) error
	CreateProperty(ctx context.Context, p domain.Property) error
	CreateBooking(ctx context.Context, b domain.Booking) error
	CreateReview(ctx context.Context, r domain.Review) error
}

// SeedJob inserts one record. Records that already exist are reported as
// ErrAlreadySeeded so reruns are harmless.
type SeedJob struct {
	ID  string
	Run func(ctx context.Context) error
}

var ErrAlreadySeeded = errors.New("already seeded")

type SeedService struct {
	repo SeedRepository
}

func NewSeedService(r SeedRepository) *SeedService {
	return &SeedService{repo: r}
}

type seedUser struct {
	ID string `json:"id"`
	domain.UserInput
}

type seedHost struct {
	ID string `json:"id"`
	domain.HostInput
}

type seedAmenity struct {
	ID string `json:"id"`
	domain.AmenityInput
}

type seedProperty struct {
	ID string `json:"id"`
	domain.PropertyInput
}

type seedBooking struct {
	ID string `json:"id"`
	domain.BookingInput
}

type seedReview struct {
	ID string `json:"id"`
	domain.ReviewInput
}

// Jobs reads <dir>/<resource>.json, shaped {"<resource>": [...]}, and
// returns one insert job per record.
func (s *SeedService) Jobs(dir, resource string) ([]SeedJob, error) {
	b, err := os.ReadFile(filepath.Join(dir, resource+".json"))
	if err != nil {
		return nil, err
	}

	switch resource {
	case "users":
		recs, err := decodeSeed[seedUser](b, resource)
		if err != nil {
			return nil, err
		}
		return buildJobs(recs, func(r seedUser) string { return r.ID }, func(ctx context.Context, r seedUser) error {
			u, err := userFromInput(r.ID, r.UserInput)
			if err != nil {
				return err
			}
			return s.repo.CreateUser(ctx, u)
		}), nil
	case "hosts":
		recs, err := decodeSeed[seedHost](b, resource)
		if err != nil {
			return nil, err
		}
		return buildJobs(recs, func(r seedHost) string { return r.ID }, func(ctx context.Context, r seedHost) error {
			h, err := hostFromInput(r.ID, r.HostInput)
			if err != nil {
				return err
			}
			return s.repo.CreateHost(ctx, h)
		}), nil
	case "amenities":
		recs, err := decodeSeed[seedAmenity](b, resource)
		if err != nil {
			return nil, err
		}
		return buildJobs(recs, func(r seedAmenity) string { return r.ID }, func(ctx context.Context, r seedAmenity) error {
			return s.repo.CreateAmenity(ctx, domain.Amenity{ID: r.ID, Name: r.Name})
		}), nil
	case "properties":
		recs, err := decodeSeed[seedProperty](b, resource)
		if err != nil {
			return nil, err
		}
		return buildJobs(recs, func(r seedProperty) string { return r.ID }, func(ctx context.Context, r seedProperty) error {
			return s.repo.CreateProperty(ctx, propertyFromInput(r.ID, r.PropertyInput))
		}), nil
	case "bookings":
		recs, err := decodeSeed[seedBooking](b, resource)
		if err != nil {
			return nil, err
		}
		return buildJobs(recs, func(r seedBooking) string { return r.ID }, func(ctx context.Context, r seedBooking) error {
			return s.repo.CreateBooking(ctx, bookingFromInput(r.ID, r.BookingInput))
		}), nil
	case "reviews":
		recs, err := decodeSeed[seedReview](b, resource)
		if err != nil {
			return nil, err
		}
		return buildJobs(recs, func(r seedReview) string { return r.ID }, func(ctx context.Context, r seedReview) error {
			return s.repo.CreateReview(ctx, reviewFromInput(r.ID, r.ReviewInput))
		}), nil
	}
	return nil, fmt.Errorf("unknown seed resource %q", resource)
}

func decodeSeed[T any](b []byte, key string) ([]T, error) {
	var doc map[string][]T
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("decode %s seed: %w", key, err)
	}
	return doc[key], nil
}

func buildJobs[T any](recs []T, id func(T) string, insert func(context.Context, T) error) []SeedJob {
	jobs := make([]SeedJob, 0, len(recs))
	for _, rec := range recs {
		rec := rec
		jobs = append(jobs, SeedJob{
			ID: id(rec),
			Run: func(ctx context.Context) error {
				err := insert(ctx, rec)
				if errors.Is(err, domain.ErrDuplicate) {
					return ErrAlreadySeeded
				}
				return err
			},
		})
	}
	return jobs
}
