package app

import (
	"context"

	"staybook/internal/domain"
)

const reviewResource = "Review"

type ReviewService struct {
	repo domain.ReviewRepository
}

func NewReviewService(r domain.ReviewRepository) *ReviewService {
	return &ReviewService{repo: r}
}

func (s *ReviewService) List(ctx context.Context, f domain.ReviewFilter) ([]domain.Review, error) {
	rs, err := s.repo.ListReviews(ctx, f)
	if err != nil {
		return nil, err
	}
	return orEmpty(rs), nil
}

func (s *ReviewService) Get(ctx context.Context, id string) (domain.Review, error) {
	r, err := s.repo.GetReview(ctx, id)
	if err != nil {
		return domain.Review{}, readErr(err, reviewResource, id)
	}
	return r, nil
}

func (s *ReviewService) Create(ctx context.Context, in domain.ReviewInput) (domain.Review, error) {
	r := reviewFromInput(newID(), in)
	if err := s.repo.CreateReview(ctx, r); err != nil {
		return domain.Review{}, writeErr(err, reviewResource)
	}
	return r, nil
}

func (s *ReviewService) Update(ctx context.Context, id string, in domain.ReviewInput) (domain.Confirmation, error) {
	n, err := s.repo.UpdateReview(ctx, reviewFromInput(id, in))
	if err := affectedOne(n, err, reviewResource, id); err != nil {
		return domain.Confirmation{}, err
	}
	return domain.Updated(reviewResource, id), nil
}

func (s *ReviewService) Delete(ctx context.Context, id string) (string, error) {
	n, err := s.repo.DeleteReview(ctx, id)
	if err := affectedOne(n, err, reviewResource, id); err != nil {
		return "", err
	}
	return id, nil
}

func reviewFromInput(id string, in domain.ReviewInput) domain.Review {
	return domain.Review{
		ID:         id,
		UserID:     in.UserID,
		PropertyID: in.PropertyID,
		Rating:     in.Rating,
		Comment:    in.Comment,
	}
}
