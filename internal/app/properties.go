package app

import (
	"context"

	"staybook/internal/domain"
)

const propertyResource = "Property"

type PropertyService struct {
	repo domain.PropertyRepository
}

func NewPropertyService(r domain.PropertyRepository) *PropertyService {
	return &PropertyService{repo: r}
}

func (s *PropertyService) List(ctx context.Context, f domain.PropertyFilter) ([]domain.Property, error) {
	ps, err := s.repo.ListProperties(ctx, f)
	if err != nil {
		return nil, err
	}
	return orEmpty(ps), nil
}

func (s *PropertyService) Get(ctx context.Context, id string) (domain.Property, error) {
	p, err := s.repo.GetProperty(ctx, id)
	if err != nil {
		return domain.Property{}, readErr(err, propertyResource, id)
	}
	return p, nil
}

// Create fails with ValidationError when hostId or any amenity id is unknown.
func (s *PropertyService) Create(ctx context.Context, in domain.PropertyInput) (domain.Property, error) {
	p := propertyFromInput(newID(), in)
	if err := s.repo.CreateProperty(ctx, p); err != nil {
		return domain.Property{}, writeErr(err, propertyResource)
	}
	return p, nil
}

// Update replaces the row and its amenity links in one transaction.
func (s *PropertyService) Update(ctx context.Context, id string, in domain.PropertyInput) (domain.Confirmation, error) {
	n, err := s.repo.UpdateProperty(ctx, propertyFromInput(id, in))
	if err := affectedOne(n, err, propertyResource, id); err != nil {
		return domain.Confirmation{}, err
	}
	return domain.Updated(propertyResource, id), nil
}

func (s *PropertyService) Delete(ctx context.Context, id string) (string, error) {
	n, err := s.repo.DeleteProperty(ctx, id)
	if err := affectedOne(n, err, propertyResource, id); err != nil {
		return "", err
	}
	return id, nil
}

func propertyFromInput(id string, in domain.PropertyInput) domain.Property {
	return domain.Property{
		ID:            id,
		HostID:        in.HostID,
		Title:         in.Title,
		Description:   in.Description,
		Location:      in.Location,
		PricePerNight: in.PricePerNight,
		BedroomCount:  in.BedroomCount,
		BathRoomCount: in.BathRoomCount,
		MaxGuestCount: in.MaxGuestCount,
		Rating:        in.Rating,
		AmenityIDs:    orEmpty(in.AmenityIDs),
	}
}
