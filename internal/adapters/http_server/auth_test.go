package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staybook/internal/adapters/token"
)

func TestRequireToken_ForwardsClaims(t *testing.T) {
	m := token.NewManager("k", time.Minute)
	tok, err := m.Issue("u9", "mia")
	require.NoError(t, err)

	var got *token.Claims
	h := RequireToken(m)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = ClaimsFrom(r.Context())
	}))

	req := httptest.NewRequest(http.MethodDelete, "/x", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	h.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, got)
	assert.Equal(t, "u9", got.UserID)
	assert.Equal(t, "mia", got.Username)
}

func TestRequireToken_ForeignSecretRejected(t *testing.T) {
	tok, err := token.NewManager("other", time.Minute).Issue("u9", "mia")
	require.NoError(t, err)

	called := false
	h := RequireToken(token.NewManager("k", time.Minute))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))
	req := httptest.NewRequest(http.MethodPost, "/x", nil)
	req.Header.Set("Authorization", tok)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestClaimsFrom_Anonymous(t *testing.T) {
	assert.Nil(t, ClaimsFrom(httptest.NewRequest(http.MethodGet, "/", nil).Context()))
}
