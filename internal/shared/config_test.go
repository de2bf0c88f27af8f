package shared

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"HTTP_ADDR", "REDIS_ADDR", "TOKEN_TTL_SECONDS", "CORS_ORIGINS", "MIGRATE_ON_START", "RATE_LIMIT_RPS"} {
		t.Setenv(k, "")
	}
	c := Load()
	assert.Equal(t, ":3000", c.HTTPAddr)
	assert.Empty(t, c.RedisAddr)
	assert.Equal(t, time.Hour, c.TokenTTL)
	assert.True(t, c.MigrateOnStart)
	assert.Zero(t, c.RateLimitRPS)
	assert.Nil(t, c.CORSOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":8081")
	t.Setenv("LOGIN_WINDOW_SECONDS", "60")
	t.Setenv("LOGIN_MAX_ATTEMPTS", "oops")
	t.Setenv("MIGRATE_ON_START", "false")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("CORS_ORIGINS", "https://a.example, ,https://b.example")

	c := Load()
	assert.Equal(t, ":8081", c.HTTPAddr)
	assert.Equal(t, time.Minute, c.LoginWindow)
	assert.Equal(t, 5, c.LoginAttempts, "bad integers fall back to the default")
	assert.False(t, c.MigrateOnStart)
	assert.Equal(t, 2.5, c.RateLimitRPS)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, c.CORSOrigins)
}
