package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"staybook/internal/domain"
)

type recordingSeedRepo struct {
	users   []domain.User
	reviews []domain.Review
	dup     bool
}

func (r *recordingSeedRepo) CreateUser(ctx context.Context, u domain.User) error {
	if r.dup {
		return domain.ErrDuplicate
	}
	r.users = append(r.users, u)
	return nil
}
func (r *recordingSeedRepo) CreateHost(ctx context.Context, h domain.Host) error         { return nil }
func (r *recordingSeedRepo) CreateAmenity(ctx context.Context, a domain.Amenity) error   { return nil }
func (r *recordingSeedRepo) CreateProperty(ctx context.Context, p domain.Property) error { return nil }
func (r *recordingSeedRepo) CreateBooking(ctx context.Context, b domain.Booking) error   { return nil }
func (r *recordingSeedRepo) CreateReview(ctx context.Context, rv domain.Review) error {
	r.reviews = append(r.reviews, rv)
	return nil
}

func writeSeed(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600); err != nil {
		t.Fatalf("write seed: %v", err)
	}
}

func TestSeedService_UsersKeepIDsAndHashPasswords(t *testing.T) {
	dir := t.TempDir()
	writeSeed(t, dir, "users.json", `{"users":[{"id":"a1","username":"jdoe","password":"pw","name":"J","email":"j@x.com","phoneNumber":"1"}]}`)
	repo := &recordingSeedRepo{}
	s := NewSeedService(repo)

	jobs, err := s.Jobs(dir, "users")
	if err != nil {
		t.Fatalf("jobs: %v", err)
	}
	if len(jobs) != 1 || jobs[0].ID != "a1" {
		t.Fatalf("unexpected jobs: %+v", jobs)
	}
	if err := jobs[0].Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if repo.users[0].ID != "a1" || repo.users[0].Password == "pw" {
		t.Fatalf("unexpected user: %+v", repo.users[0])
	}
}

func TestSeedService_DuplicateIsAlreadySeeded(t *testing.T) {
	dir := t.TempDir()
	writeSeed(t, dir, "users.json", `{"users":[{"id":"a1","username":"jdoe","password":"pw"}]}`)
	s := NewSeedService(&recordingSeedRepo{dup: true})

	jobs, err := s.Jobs(dir, "users")
	if err != nil {
		t.Fatalf("jobs: %v", err)
	}
	if err := jobs[0].Run(context.Background()); !errors.Is(err, ErrAlreadySeeded) {
		t.Fatalf("expected ErrAlreadySeeded, got %v", err)
	}
}

func TestSeedService_UnknownResource(t *testing.T) {
	dir := t.TempDir()
	writeSeed(t, dir, "widgets.json", `{}`)
	if _, err := NewSeedService(&recordingSeedRepo{}).Jobs(dir, "widgets"); err == nil {
		t.Fatalf("expected error for unknown resource")
	}
}
