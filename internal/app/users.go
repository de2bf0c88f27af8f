package app

import (
	"context"

	"staybook/internal/domain"
)

const userResource = "User"

type UserService struct {
	repo domain.UserRepository
}

func NewUserService(r domain.UserRepository) *UserService {
	return &UserService{repo: r}
}

func (s *UserService) List(ctx context.Context, f domain.UserFilter) ([]domain.User, error) {
	us, err := s.repo.ListUsers(ctx, f)
	if err != nil {
		return nil, err
	}
	return orEmpty(us), nil
}

func (s *UserService) Get(ctx context.Context, id string) (domain.User, error) {
	u, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return domain.User{}, readErr(err, userResource, id)
	}
	return u, nil
}

func (s *UserService) Create(ctx context.Context, in domain.UserInput) (domain.User, error) {
	u, err := userFromInput(newID(), in)
	if err != nil {
		return domain.User{}, err
	}
	if err := s.repo.CreateUser(ctx, u); err != nil {
		return domain.User{}, writeErr(err, userResource)
	}
	return u, nil
}

func (s *UserService) Update(ctx context.Context, id string, in domain.UserInput) (domain.Confirmation, error) {
	u, err := userFromInput(id, in)
	if err != nil {
		return domain.Confirmation{}, err
	}
	n, err := s.repo.UpdateUser(ctx, u)
	if err := affectedOne(n, err, userResource, id); err != nil {
		return domain.Confirmation{}, err
	}
	return domain.Updated(userResource, id), nil
}

func (s *UserService) Delete(ctx context.Context, id string) (string, error) {
	n, err := s.repo.DeleteUser(ctx, id)
	if err := affectedOne(n, err, userResource, id); err != nil {
		return "", err
	}
	return id, nil
}

func userFromInput(id string, in domain.UserInput) (domain.User, error) {
	hash, err := hashPassword(in.Password)
	if err != nil {
		return domain.User{}, err
	}
	return domain.User{
		ID:             id,
		Username:       in.Username,
		Password:       hash,
		Name:           in.Name,
		Email:          in.Email,
		PhoneNumber:    in.PhoneNumber,
		ProfilePicture: in.ProfilePicture,
	}, nil
}
