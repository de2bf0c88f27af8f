package mysql

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"staybook/internal/adapters/observability"
	"staybook/internal/domain"
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProperty(s rowScanner) (domain.Property, error) {
	var p domain.Property
	var amenities string
	err := s.Scan(&p.ID, &p.HostID, &p.Title, &p.Description, &p.Location, &p.PricePerNight,
		&p.BedroomCount, &p.BathRoomCount, &p.MaxGuestCount, &p.Rating, &amenities)
	p.AmenityIDs = splitIDs(amenities)
	return p, err
}

func splitIDs(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}

func (r *Repo) ListProperties(ctx context.Context, f domain.PropertyFilter) ([]domain.Property, error) {
	var price any
	if f.PricePerNight != nil {
		price = *f.PricePerNight
	}
	rows, err := r.db.QueryContext(ctx, listPropertiesSQL,
		f.Location, f.Location, price, price, f.Amenity, f.Amenity)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repo) GetProperty(ctx context.Context, id string) (domain.Property, error) {
	p, err := scanProperty(r.db.QueryRowContext(ctx, getPropertySQL, id))
	if errors.Is(err, sql.ErrNoRows) {
		observability.ObserveStore("properties", "get", "miss")
		return domain.Property{}, domain.ErrNoRecord
	}
	observability.ObserveStore("properties", "get", outcome(1, err))
	return p, err
}

// CreateProperty inserts the row and its amenity links atomically; an
// unknown host or amenity id rolls back the whole insert.
func (r *Repo) CreateProperty(ctx context.Context, p domain.Property) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := r.exec(ctx, tx, "properties", "create", insertPropertySQL, propertyArgs(p, true)...); err != nil {
			return err
		}
		return linkAmenities(ctx, tx, p.ID, p.AmenityIDs)
	})
}

// UpdateProperty rewrites the row, then its links, only if the row matched.
func (r *Repo) UpdateProperty(ctx context.Context, p domain.Property) (int64, error) {
	var n int64
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		var err error
		n, err = r.exec(ctx, tx, "properties", "update", updatePropertySQL, propertyArgs(p, false)...)
		if err != nil || n == 0 {
			return err
		}
		if _, err := tx.ExecContext(ctx, clearPropertyAmenitiesSQL, p.ID); err != nil {
			return err
		}
		return linkAmenities(ctx, tx, p.ID, p.AmenityIDs)
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

func (r *Repo) DeleteProperty(ctx context.Context, id string) (int64, error) {
	return r.exec(ctx, r.db, "properties", "delete", deletePropertySQL, id)
}

func propertyArgs(p domain.Property, idFirst bool) []any {
	fields := []any{p.HostID, p.Title, p.Description, p.Location, p.PricePerNight,
		p.BedroomCount, p.BathRoomCount, p.MaxGuestCount, p.Rating}
	if idFirst {
		return append([]any{p.ID}, fields...)
	}
	return append(fields, p.ID)
}

func linkAmenities(ctx context.Context, tx *sql.Tx, propertyID string, amenityIDs []string) error {
	if len(amenityIDs) == 0 {
		return nil
	}
	values := make([]string, 0, len(amenityIDs))
	args := make([]any, 0, len(amenityIDs)*2)
	for _, aid := range amenityIDs {
		values = append(values, "(?, ?)")
		args = append(args, propertyID, aid)
	}
	_, err := tx.ExecContext(ctx, insertPropertyAmenitiesPrefix+strings.Join(values, ","), args...)
	return mapErr(err)
}
