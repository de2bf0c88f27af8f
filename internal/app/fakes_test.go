package app

import (
	"context"
	"sync"
	"time"

	"github.com/alexedwards/argon2id"

	"staybook/internal/domain"
)

func init() {
	hashParams = &argon2id.Params{Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32}
}

// ---- fakes ----

// fakeHosts mimics the gateway: mutations report affected rows.
type fakeHosts struct {
	mu      sync.Mutex
	rows    map[string]domain.Host
	writes  int
	failErr error
}

func newFakeHosts() *fakeHosts { return &fakeHosts{rows: map[string]domain.Host{}} }

func (f *fakeHosts) ListHosts(ctx context.Context, flt domain.HostFilter) ([]domain.Host, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Host
	for _, h := range f.rows {
		if flt.Name == "" || h.Name == flt.Name {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeHosts) GetHost(ctx context.Context, id string) (domain.Host, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	h, ok := f.rows[id]
	if !ok {
		return domain.Host{}, domain.ErrNoRecord
	}
	return h, nil
}

func (f *fakeHosts) CreateHost(ctx context.Context, h domain.Host) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failErr != nil {
		return f.failErr
	}
	for _, existing := range f.rows {
		if existing.Username == h.Username {
			return domain.ErrDuplicate
		}
	}
	f.writes++
	f.rows[h.ID] = h
	return nil
}

func (f *fakeHosts) UpdateHost(ctx context.Context, h domain.Host) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[h.ID]; !ok {
		return 0, nil
	}
	f.writes++
	f.rows[h.ID] = h
	return 1, nil
}

func (f *fakeHosts) DeleteHost(ctx context.Context, id string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[id]; !ok {
		return 0, nil
	}
	f.writes++
	delete(f.rows, id)
	return 1, nil
}

type fakeReviews struct {
	rows  map[string]domain.Review
	users map[string]bool
	props map[string]bool
}

func (f *fakeReviews) ListReviews(ctx context.Context, flt domain.ReviewFilter) ([]domain.Review, error) {
	var out []domain.Review
	for _, r := range f.rows {
		if flt.UserID != "" && r.UserID != flt.UserID {
			continue
		}
		if flt.PropertyID != "" && r.PropertyID != flt.PropertyID {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeReviews) GetReview(ctx context.Context, id string) (domain.Review, error) {
	r, ok := f.rows[id]
	if !ok {
		return domain.Review{}, domain.ErrNoRecord
	}
	return r, nil
}

func (f *fakeReviews) CreateReview(ctx context.Context, r domain.Review) error {
	if !f.users[r.UserID] || !f.props[r.PropertyID] {
		return domain.ErrMissingReference
	}
	f.rows[r.ID] = r
	return nil
}

func (f *fakeReviews) UpdateReview(ctx context.Context, r domain.Review) (int64, error) {
	if _, ok := f.rows[r.ID]; !ok {
		return 0, nil
	}
	f.rows[r.ID] = r
	return 1, nil
}

func (f *fakeReviews) DeleteReview(ctx context.Context, id string) (int64, error) {
	if _, ok := f.rows[id]; !ok {
		return 0, nil
	}
	delete(f.rows, id)
	return 1, nil
}

type fakeUsers struct {
	byName map[string]domain.User
}

func (f *fakeUsers) ListUsers(ctx context.Context, flt domain.UserFilter) ([]domain.User, error) {
	return nil, nil
}
func (f *fakeUsers) GetUser(ctx context.Context, id string) (domain.User, error) {
	for _, u := range f.byName {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrNoRecord
}
func (f *fakeUsers) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	u, ok := f.byName[username]
	if !ok {
		return domain.User{}, domain.ErrNoRecord
	}
	return u, nil
}
func (f *fakeUsers) CreateUser(ctx context.Context, u domain.User) error {
	f.byName[u.Username] = u
	return nil
}
func (f *fakeUsers) UpdateUser(ctx context.Context, u domain.User) (int64, error) { return 0, nil }
func (f *fakeUsers) DeleteUser(ctx context.Context, id string) (int64, error)     { return 0, nil }

type fakeThrottle struct {
	hits     map[string]int
	resets   int
	err      error
	resetErr error
}

func (f *fakeThrottle) Hit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	if f.err != nil {
		return true, f.err
	}
	f.hits[key]++
	return f.hits[key] <= limit, nil
}

func (f *fakeThrottle) Reset(ctx context.Context, key string) error {
	if f.resetErr != nil {
		return f.resetErr
	}
	f.resets++
	delete(f.hits, key)
	return nil
}

type fakeTokens struct{}

func (fakeTokens) Issue(userID, username string) (string, error) { return "tok-" + userID, nil }
