package mysql

import (
	"context"

	"staybook/internal/domain"
)

func (r *Repo) ListAmenities(ctx context.Context, f domain.AmenityFilter) ([]domain.Amenity, error) {
	rows, err := r.db.QueryContext(ctx, listAmenitiesSQL, f.Name, f.Name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Amenity
	for rows.Next() {
		var a domain.Amenity
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *Repo) GetAmenity(ctx context.Context, id string) (domain.Amenity, error) {
	var a domain.Amenity
	err := r.get(ctx, "amenities", getAmenitySQL, []any{id}, &a.ID, &a.Name)
	return a, err
}

func (r *Repo) CreateAmenity(ctx context.Context, a domain.Amenity) error {
	_, err := r.exec(ctx, r.db, "amenities", "create", insertAmenitySQL, a.ID, a.Name)
	return err
}

func (r *Repo) UpdateAmenity(ctx context.Context, a domain.Amenity) (int64, error) {
	return r.exec(ctx, r.db, "amenities", "update", updateAmenitySQL, a.Name, a.ID)
}

func (r *Repo) DeleteAmenity(ctx context.Context, id string) (int64, error) {
	return r.exec(ctx, r.db, "amenities", "delete", deleteAmenitySQL, id)
}
