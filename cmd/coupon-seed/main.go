// Command coupon-seed bulk-imports coupon definitions from a gzipped
// JSON-lines file (local disk or S3) into the database. Existing codes are
// skipped, so re-running with the same file is safe.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"quickbite/internal/config"
	"quickbite/internal/coupon"
	"quickbite/internal/database"
	"quickbite/internal/model"
	"quickbite/internal/repository"
	"quickbite/internal/seed"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var filePath string
	flag.StringVar(&filePath, "file", "data/coupons.jsonl.gz", "path to the gzipped JSON-lines coupon file (S3 key when S3 is enabled)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	logger.Info().Str("file", filePath).Msg("starting coupon seed import")

	ctx := context.Background()

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	var loader seed.Loader
	if cfg.S3.Enabled {
		loader, err = seed.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to initialise S3 loader, falling back to local file system")
			loader = seed.NewFileLoader(logger)
		} else {
			filePath = cfg.S3.Prefix + filePath
		}
	} else {
		loader = seed.NewFileLoader(logger)
	}

	requests, err := loader.Load(ctx, filePath)
	if err != nil {
		return fmt.Errorf("failed to load coupon seed file: %w", err)
	}

	couponRepo := repository.NewCouponRepository(pool, logger)
	couponService := coupon.NewService(couponRepo, cfg.Pricing.DeliveryFee, logger)

	created, skipped := 0, 0
	for i := range requests {
		_, err := couponService.Create(ctx, &requests[i])
		switch {
		case err == nil:
			created++
		case errors.Is(err, model.ErrCouponExists):
			skipped++
		default:
			return fmt.Errorf("failed to create coupon %q: %w", requests[i].Code, err)
		}
	}

	logger.Info().
		Int("created", created).
		Int("skipped", skipped).
		Msg("coupon seed import completed")

	return nil
}
