package app

import (
	"context"

	"staybook/internal/domain"
)

const amenityResource = "Amenity"

type AmenityService struct {
	repo domain.AmenityRepository
}

func NewAmenityService(r domain.AmenityRepository) *AmenityService {
	return &AmenityService{repo: r}
}

func (s *AmenityService) List(ctx context.Context, f domain.AmenityFilter) ([]domain.Amenity, error) {
	as, err := s.repo.ListAmenities(ctx, f)
	if err != nil {
		return nil, err
	}
	return orEmpty(as), nil
}

func (s *AmenityService) Get(ctx context.Context, id string) (domain.Amenity, error) {
	a, err := s.repo.GetAmenity(ctx, id)
	if err != nil {
		return domain.Amenity{}, readErr(err, amenityResource, id)
	}
	return a, nil
}

func (s *AmenityService) Create(ctx context.Context, in domain.AmenityInput) (domain.Amenity, error) {
	a := domain.Amenity{ID: newID(), Name: in.Name}
	if err := s.repo.CreateAmenity(ctx, a); err != nil {
		return domain.Amenity{}, writeErr(err, amenityResource)
	}
	return a, nil
}

func (s *AmenityService) Update(ctx context.Context, id string, in domain.AmenityInput) (domain.Confirmation, error) {
	n, err := s.repo.UpdateAmenity(ctx, domain.Amenity{ID: id, Name: in.Name})
	if err := affectedOne(n, err, amenityResource, id); err != nil {
		return domain.Confirmation{}, err
	}
	return domain.Updated(amenityResource, id), nil
}

func (s *AmenityService) Delete(ctx context.Context, id string) (string, error) {
	n, err := s.repo.DeleteAmenity(ctx, id)
	if err := affectedOne(n, err, amenityResource, id); err != nil {
		return "", err
	}
	return id, nil
}
