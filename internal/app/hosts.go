package app

import (
	"context"

	"staybook/internal/domain"
)

const hostResource = "Host"

type HostService struct {
	repo domain.HostRepository
}

func NewHostService(r domain.HostRepository) *HostService {
	return &HostService{repo: r}
}

func (s *HostService) List(ctx context.Context, f domain.HostFilter) ([]domain.Host, error) {
	hs, err := s.repo.ListHosts(ctx, f)
	if err != nil {
		return nil, err
	}
	return orEmpty(hs), nil
}

func (s *HostService) Get(ctx context.Context, id string) (domain.Host, error) {
	h, err := s.repo.GetHost(ctx, id)
	if err != nil {
		return domain.Host{}, readErr(err, hostResource, id)
	}
	return h, nil
}

func (s *HostService) Create(ctx context.Context, in domain.HostInput) (domain.Host, error) {
	h, err := hostFromInput(newID(), in)
	if err != nil {
		return domain.Host{}, err
	}
	if err := s.repo.CreateHost(ctx, h); err != nil {
		return domain.Host{}, writeErr(err, hostResource)
	}
	return h, nil
}

func (s *HostService) Update(ctx context.Context, id string, in domain.HostInput) (domain.Confirmation, error) {
	h, err := hostFromInput(id, in)
	if err != nil {
		return domain.Confirmation{}, err
	}
	n, err := s.repo.UpdateHost(ctx, h)
	if err := affectedOne(n, err, hostResource, id); err != nil {
		return domain.Confirmation{}, err
	}
	return domain.Updated(hostResource, id), nil
}

func (s *HostService) Delete(ctx context.Context, id string) (string, error) {
	n, err := s.repo.DeleteHost(ctx, id)
	if err := affectedOne(n, err, hostResource, id); err != nil {
		return "", err
	}
	return id, nil
}

func hostFromInput(id string, in domain.HostInput) (domain.Host, error) {
	hash, err := hashPassword(in.Password)
	if err != nil {
		return domain.Host{}, err
	}
	return domain.Host{
		ID:             id,
		Username:       in.Username,
		Password:       hash,
		Name:           in.Name,
		Email:          in.Email,
		PhoneNumber:    in.PhoneNumber,
		ProfilePicture: in.ProfilePicture,
		AboutMe:        in.AboutMe,
	}, nil
}
