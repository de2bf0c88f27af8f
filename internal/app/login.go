package app

import (
	"context"
	"errors"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/rs/zerolog/log"

	"staybook/internal/domain"
)

type LoginService struct {
	users       domain.UserRepository
	tokens      domain.TokenIssuer
	throttle    domain.LoginThrottle // nil disables throttling
	maxAttempts int
	window      time.Duration
}

func NewLoginService(u domain.UserRepository, t domain.TokenIssuer, th domain.LoginThrottle, maxAttempts int, window time.Duration) *LoginService {
	return &LoginService{users: u, tokens: t, throttle: th, maxAttempts: maxAttempts, window: window}
}

// Login checks the credentials and returns a signed token. Unknown users and
// wrong passwords are indistinguishable to the caller.
// Attempts are counted per username; client addresses come from forwarding
// headers and cannot partition the budget.
func (s *LoginService) Login(ctx context.Context, username, password string) (string, error) {
	key := throttleKey(username)
	if s.throttle != nil && s.maxAttempts > 0 {
		// a throttle outage lets the attempt through
		if ok, err := s.throttle.Hit(ctx, key, s.maxAttempts, s.window); err == nil && !ok {
			return "", domain.ErrThrottled
		}
	}

	u, err := s.users.GetUserByUsername(ctx, username)
	if errors.Is(err, domain.ErrNoRecord) {
		return "", domain.ErrUnauthorized
	}
	if err != nil {
		return "", err
	}
	match, err := argon2id.ComparePasswordAndHash(password, u.Password)
	if err != nil || !match {
		return "", domain.ErrUnauthorized
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, key); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("login throttle reset failed")
		}
	}
	return s.tokens.Issue(u.ID, u.Username)
}

func throttleKey(username string) string { return "login:" + username }
