package httpserver

import (
	"context"
	"errors"
	"sync"
	"time"

	"staybook/internal/domain"
)

// memHosts reports affected rows like the MySQL gateway.
type memHosts struct {
	mu      sync.Mutex
	rows    map[string]domain.Host
	writes  int
	listErr error
}

func newMemHosts() *memHosts { return &memHosts{rows: map[string]domain.Host{}} }

func (m *memHosts) ListHosts(ctx context.Context, f domain.HostFilter) ([]domain.Host, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []domain.Host
	for _, h := range m.rows {
		if f.Name == "" || f.Name == h.Name {
			out = append(out, h)
		}
	}
	return out, nil
}

func (m *memHosts) GetHost(ctx context.Context, id string) (domain.Host, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	h, ok := m.rows[id]
	if !ok {
		return domain.Host{}, domain.ErrNoRecord
	}
	return h, nil
}

func (m *memHosts) CreateHost(ctx context.Context, h domain.Host) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.rows {
		if e.Username == h.Username {
			return domain.ErrDuplicate
		}
	}
	m.writes++
	m.rows[h.ID] = h
	return nil
}

func (m *memHosts) UpdateHost(ctx context.Context, h domain.Host) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[h.ID]; !ok {
		return 0, nil
	}
	m.writes++
	m.rows[h.ID] = h
	return 1, nil
}

func (m *memHosts) DeleteHost(ctx context.Context, id string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return 0, nil
	}
	m.writes++
	delete(m.rows, id)
	return 1, nil
}

type memReviews struct {
	mu   sync.Mutex
	rows map[string]domain.Review
}

func (m *memReviews) ListReviews(ctx context.Context, f domain.ReviewFilter) ([]domain.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Review
	for _, r := range m.rows {
		if (f.UserID == "" || r.UserID == f.UserID) && (f.PropertyID == "" || r.PropertyID == f.PropertyID) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memReviews) GetReview(ctx context.Context, id string) (domain.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rows[id]
	if !ok {
		return domain.Review{}, domain.ErrNoRecord
	}
	return r, nil
}

// CreateReview only knows user "u1" and property "p1".
func (m *memReviews) CreateReview(ctx context.Context, r domain.Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r.UserID != "u1" || r.PropertyID != "p1" {
		return domain.ErrMissingReference
	}
	m.rows[r.ID] = r
	return nil
}

func (m *memReviews) UpdateReview(ctx context.Context, r domain.Review) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[r.ID]; !ok {
		return 0, nil
	}
	m.rows[r.ID] = r
	return 1, nil
}

func (m *memReviews) DeleteReview(ctx context.Context, id string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return 0, nil
	}
	delete(m.rows, id)
	return 1, nil
}

type memUsers struct {
	byName map[string]domain.User
}

func (m *memUsers) ListUsers(ctx context.Context, f domain.UserFilter) ([]domain.User, error) {
	return nil, nil
}

func (m *memUsers) GetUser(ctx context.Context, id string) (domain.User, error) {
	for _, u := range m.byName {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrNoRecord
}

func (m *memUsers) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	u, ok := m.byName[username]
	if !ok {
		return domain.User{}, domain.ErrNoRecord
	}
	return u, nil
}

func (m *memUsers) CreateUser(ctx context.Context, u domain.User) error {
	m.byName[u.Username] = u
	return nil
}

func (m *memUsers) UpdateUser(ctx context.Context, u domain.User) (int64, error) {
	return 0, errors.New("not supported")
}

func (m *memUsers) DeleteUser(ctx context.Context, id string) (int64, error) {
	return 0, errors.New("not supported")
}

// memThrottle counts hits per key with no expiry.
type memThrottle struct {
	mu   sync.Mutex
	hits map[string]int
}

func newMemThrottle() *memThrottle { return &memThrottle{hits: map[string]int{}} }

func (m *memThrottle) Hit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hits[key]++
	return m.hits[key] <= limit, nil
}

func (m *memThrottle) Reset(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.hits, key)
	return nil
}
