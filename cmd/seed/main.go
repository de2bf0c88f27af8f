package main

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"staybook/internal/adapters/observability"
	"staybook/internal/app"
	"staybook/internal/shared"
	mysqlrepo "staybook/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	log.Info().
		Str("dir", cfg.SeedDir).
		Int("workers", cfg.SeedWorkers).
		Msg("seeder starting")

	if err := mysqlrepo.Migrate(cfg.MySQLDSN); err != nil {
		log.Fatal().Err(err).Msg("migrations failed")
	}
	db, err := mysqlrepo.Open(ctx, cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database open failed")
	}
	defer db.Close()
	log.Info().Msg("db ping ok")

	seeder := app.NewSeedService(mysqlrepo.New(db))
	workers := cfg.SeedWorkers
	if workers < 1 {
		workers = 1
	}
	sem := semaphore.NewWeighted(int64(workers))

	// resources run one after another so parents exist before children
	for _, resource := range app.SeedOrder {
		jobs, err := seeder.Jobs(cfg.SeedDir, resource)
		if err != nil {
			log.Fatal().Err(err).Str("resource", resource).Msg("load seed file failed")
		}

		var wg sync.WaitGroup
		var inserted, skipped, failed atomic.Int64
		for _, job := range jobs {
			// acquire before launching the goroutine; release inside it
			if err := sem.Acquire(ctx, 1); err != nil {
				log.Fatal().Err(err).Msg("semaphore acquire failed")
			}

			wg.Add(1)
			go func(job app.SeedJob) {
				defer wg.Done()
				defer sem.Release(1)

				err := job.Run(ctx)
				switch {
				case errors.Is(err, app.ErrAlreadySeeded):
					skipped.Add(1)
				case err != nil:
					failed.Add(1)
					log.Warn().Str("resource", resource).Str("id", job.ID).Err(err).Msg("seed failed")
				default:
					inserted.Add(1)
				}
			}(job)
		}
		wg.Wait()

		log.Info().
			Str("resource", resource).
			Int64("inserted", inserted.Load()).
			Int64("skipped", skipped.Load()).
			Int64("failed", failed.Load()).
			Msg("seeded")
	}
	log.Info().Msg("seeding completed")
}
