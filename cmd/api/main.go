package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	server "staybook/internal/adapters/http_server"
	"staybook/internal/adapters/observability"
	redisad "staybook/internal/adapters/redis"
	"staybook/internal/adapters/token"
	"staybook/internal/app"
	"staybook/internal/domain"
	"staybook/internal/shared"
	mysqlrepo "staybook/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.MigrateOnStart {
		if err := mysqlrepo.Migrate(cfg.MySQLDSN); err != nil {
			log.Fatal().Err(err).Msg("migrations failed")
		}
		log.Info().Msg("migrations applied")
	}

	// db
	db, err := mysqlrepo.Open(ctx, cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database open failed")
	}
	defer db.Close()
	log.Info().Msg("database connection ok")

	// deps
	repo := mysqlrepo.New(db)
	tokens := token.NewManager(cfg.AuthSecret, cfg.TokenTTL)

	var throttle domain.LoginThrottle
	if cfg.RedisAddr != "" {
		th := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		defer th.Close()
		throttle = th
	} else {
		log.Warn().Msg("REDIS_ADDR is empty, login throttling disabled")
	}

	// http
	reg := observability.InitRegistry()
	srv := server.New(server.Options{
		Logger:      log.Logger,
		CORSOrigins: cfg.CORSOrigins,
		RPS:         cfg.RateLimitRPS,
		Burst:       cfg.RateLimitBurst,
	})
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		Users:      app.NewUserService(repo),
		Hosts:      app.NewHostService(repo),
		Properties: app.NewPropertyService(repo),
		Amenities:  app.NewAmenityService(repo),
		Bookings:   app.NewBookingService(repo),
		Reviews:    app.NewReviewService(repo),
		Login:      app.NewLoginService(repo, tokens, throttle, cfg.LoginAttempts, cfg.LoginWindow),
		Tokens:     tokens,
		Ping:       repo.Ping,
	})

	httpSrv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           srv.Mux(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error { return observability.Serve(gctx, cfg.MetricsAddr, reg) })
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
	log.Info().Msg("shutdown complete")
}
