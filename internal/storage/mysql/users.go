package mysql

import (
	"context"

	"staybook/internal/domain"
)

func (r *Repo) ListUsers(ctx context.Context, f domain.UserFilter) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, listUsersSQL, f.Username, f.Username, f.Email, f.Email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Password, &u.Name, &u.Email, &u.PhoneNumber, &u.ProfilePicture); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *Repo) GetUser(ctx context.Context, id string) (domain.User, error) {
	var u domain.User
	err := r.get(ctx, "users", getUserSQL, []any{id},
		&u.ID, &u.Username, &u.Password, &u.Name, &u.Email, &u.PhoneNumber, &u.ProfilePicture)
	return u, err
}

func (r *Repo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	var u domain.User
	err := r.get(ctx, "users", getUserByUsernameSQL, []any{username},
		&u.ID, &u.Username, &u.Password, &u.Name, &u.Email, &u.PhoneNumber, &u.ProfilePicture)
	return u, err
}

func (r *Repo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.exec(ctx, r.db, "users", "create", insertUserSQL,
		u.ID, u.Username, u.Password, u.Name, u.Email, u.PhoneNumber, u.ProfilePicture)
	return err
}

func (r *Repo) UpdateUser(ctx context.Context, u domain.User) (int64, error) {
	return r.exec(ctx, r.db, "users", "update", updateUserSQL,
		u.Username, u.Password, u.Name, u.Email, u.PhoneNumber, u.ProfilePicture, u.ID)
}

func (r *Repo) DeleteUser(ctx context.Context, id string) (int64, error) {
	return r.exec(ctx, r.db, "users", "delete", deleteUserSQL, id)
}
