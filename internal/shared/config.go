package shared

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv         string
	LogLevel       string
	HTTPAddr       string
	MetricsAddr    string
	MySQLDSN       string
	MigrateOnStart bool
	RedisAddr      string // empty disables the login throttle
	RedisDB        int
	RedisPass      string
	AuthSecret     string
	TokenTTL       time.Duration
	LoginAttempts  int
	LoginWindow    time.Duration
	RateLimitRPS   float64
	RateLimitBurst int
	CORSOrigins    []string
	SeedDir        string
	SeedWorkers    int
}

// Load reads the environment, after merging a .env file when one exists.
func Load() Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn().Err(err).Msg(".env could not be parsed")
	}

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
			log.Warn().Str("key", k).Str("value", v).Msg("not an integer, using default")
		}
		return def
	}
	c := Config{
		AppEnv:         env("APP_ENV", "prod"),
		LogLevel:       env("LOG_LEVEL", "info"),
		HTTPAddr:       env("HTTP_ADDR", ":3000"),
		MetricsAddr:    env("METRICS_ADDR", ""),
		MySQLDSN:       env("MYSQL_DSN", "root:root@tcp(localhost:3306)/staybook"),
		MigrateOnStart: boolean("MIGRATE_ON_START", true),
		RedisAddr:      env("REDIS_ADDR", ""),
		RedisPass:      env("REDIS_PASSWORD", ""),
		RedisDB:        atoi("REDIS_DB", 0),
		AuthSecret:     env("AUTH_SECRET_KEY", ""),
		TokenTTL:       time.Duration(atoi("TOKEN_TTL_SECONDS", 3600)) * time.Second,
		LoginAttempts:  atoi("LOGIN_MAX_ATTEMPTS", 5),
		LoginWindow:    time.Duration(atoi("LOGIN_WINDOW_SECONDS", 900)) * time.Second,
		RateLimitRPS:   float("RATE_LIMIT_RPS", 0),
		RateLimitBurst: atoi("RATE_LIMIT_BURST", 0),
		CORSOrigins:    list("CORS_ORIGINS"),
		SeedDir:        env("SEED_DIR", "./data"),
		SeedWorkers:    atoi("SEED_WORKERS", 4),
	}
	if c.AuthSecret == "" {
		log.Warn().Msg("AUTH_SECRET_KEY is empty")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func boolean(k string, def bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func float(k string, def float64) float64 {
	if v := os.Getenv(k); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

// list splits a comma separated value, dropping blanks.
func list(k string) []string {
	var out []string
	for _, p := range strings.Split(os.Getenv(k), ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
