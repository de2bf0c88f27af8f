package mysql

import (
	"context"

	"staybook/internal/domain"
)

func (r *Repo) ListReviews(ctx context.Context, f domain.ReviewFilter) ([]domain.Review, error) {
	rows, err := r.db.QueryContext(ctx, listReviewsSQL, f.UserID, f.UserID, f.PropertyID, f.PropertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Review
	for rows.Next() {
		var rv domain.Review
		if err := rows.Scan(&rv.ID, &rv.UserID, &rv.PropertyID, &rv.Rating, &rv.Comment); err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

func (r *Repo) GetReview(ctx context.Context, id string) (domain.Review, error) {
	var rv domain.Review
	err := r.get(ctx, "reviews", getReviewSQL, []any{id}, &rv.ID, &rv.UserID, &rv.PropertyID, &rv.Rating, &rv.Comment)
	return rv, err
}

func (r *Repo) CreateReview(ctx context.Context, rv domain.Review) error {
	_, err := r.exec(ctx, r.db, "reviews", "create", insertReviewSQL, rv.ID, rv.UserID, rv.PropertyID, rv.Rating, rv.Comment)
	return err
}

func (r *Repo) UpdateReview(ctx context.Context, rv domain.Review) (int64, error) {
	return r.exec(ctx, r.db, "reviews", "update", updateReviewSQL, rv.UserID, rv.PropertyID, rv.Rating, rv.Comment, rv.ID)
}

func (r *Repo) DeleteReview(ctx context.Context, id string) (int64, error) {
	return r.exec(ctx, r.db, "reviews", "delete", deleteReviewSQL, id)
}
