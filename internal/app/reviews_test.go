package app

import (
	"context"
	"errors"
	"testing"

	"staybook/internal/domain"
)

func newReviewFixture() (*ReviewService, *fakeReviews) {
	repo := &fakeReviews{
		rows:  map[string]domain.Review{"5": {ID: "5", UserID: "u", PropertyID: "p", Rating: 4, Comment: "nice"}},
		users: map[string]bool{"u": true},
		props: map[string]bool{"p": true},
	}
	return NewReviewService(repo), repo
}

func TestReviewService_DeleteTwice(t *testing.T) {
	s, _ := newReviewFixture()
	ctx := context.Background()

	id, err := s.Delete(ctx, "5")
	if err != nil || id != "5" {
		t.Fatalf("delete: id=%q err=%v", id, err)
	}
	if got := domain.Deleted(reviewResource, id).Message; got != "Review with id 5 was deleted!" {
		t.Fatalf("unexpected message %q", got)
	}

	_, err = s.Delete(ctx, "5")
	var nf *domain.NotFoundError
	if !errors.As(err, &nf) || nf.Resource != "Review" {
		t.Fatalf("expected Review NotFoundError, got %v", err)
	}
}

func TestReviewService_UnresolvedReferenceIsValidation(t *testing.T) {
	s, repo := newReviewFixture()

	_, err := s.Create(context.Background(), domain.ReviewInput{UserID: "ghost", PropertyID: "p", Rating: 3})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(repo.rows) != 1 {
		t.Fatalf("expected no new row, have %d", len(repo.rows))
	}
}

func TestReviewService_UpdateThenList(t *testing.T) {
	s, _ := newReviewFixture()
	ctx := context.Background()

	if _, err := s.Update(ctx, "5", domain.ReviewInput{UserID: "u", PropertyID: "p", Rating: 2, Comment: "meh"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	rs, err := s.List(ctx, domain.ReviewFilter{PropertyID: "p"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rs) != 1 || rs[0].Rating != 2 || rs[0].Comment != "meh" {
		t.Fatalf("unexpected reviews: %+v", rs)
	}
}
