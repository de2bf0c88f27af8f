package mysql

import (
	"context"

	"staybook/internal/domain"
)

func (r *Repo) ListHosts(ctx context.Context, f domain.HostFilter) ([]domain.Host, error) {
	rows, err := r.db.QueryContext(ctx, listHostsSQL, f.Name, f.Name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Host
	for rows.Next() {
		var h domain.Host
		if err := rows.Scan(&h.ID, &h.Username, &h.Password, &h.Name, &h.Email, &h.PhoneNumber, &h.ProfilePicture, &h.AboutMe); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r *Repo) GetHost(ctx context.Context, id string) (domain.Host, error) {
	var h domain.Host
	err := r.get(ctx, "hosts", getHostSQL, []any{id},
		&h.ID, &h.Username, &h.Password, &h.Name, &h.Email, &h.PhoneNumber, &h.ProfilePicture, &h.AboutMe)
	return h, err
}

func (r *Repo) CreateHost(ctx context.Context, h domain.Host) error {
	_, err := r.exec(ctx, r.db, "hosts", "create", insertHostSQL,
		h.ID, h.Username, h.Password, h.Name, h.Email, h.PhoneNumber, h.ProfilePicture, h.AboutMe)
	return err
}

func (r *Repo) UpdateHost(ctx context.Context, h domain.Host) (int64, error) {
	return r.exec(ctx, r.db, "hosts", "update", updateHostSQL,
		h.Username, h.Password, h.Name, h.Email, h.PhoneNumber, h.ProfilePicture, h.AboutMe, h.ID)
}

func (r *Repo) DeleteHost(ctx context.Context, id string) (int64, error) {
	return r.exec(ctx, r.db, "hosts", "delete", deleteHostSQL, id)
}
