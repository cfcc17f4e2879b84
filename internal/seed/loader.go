// Package seed loads coupon definitions from gzipped JSON-lines files, from
// local disk or S3, for bulk import into the database. Each line is one
// coupon request document.
package seed

import (
	"bufio"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"quickbite/internal/model"
)

// Loader defines the interface for loading coupon seed files.
type Loader interface {
	// Load reads a gzipped JSON-lines coupon file and returns the parsed
	// coupon requests.
	Load(ctx context.Context, path string) ([]model.CouponRequest, error)
}

// fileLoader implements Loader for reading local gzipped seed files.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based seed loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "seed-loader").Logger(),
	}
}

// Load reads a gzipped JSON-lines coupon file from local disk.
func (l *fileLoader) Load(ctx context.Context, path string) ([]model.CouponRequest, error) {
	l.logger.Info().Str("file", path).Msg("loading coupon seed file")

	file, err := os.Open(path)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to open seed file")
		return nil, fmt.Errorf("failed to open seed file %s: %w", path, err)
	}
	defer file.Close()

	coupons, err := parse(ctx, file)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to parse seed file")
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}

	l.logger.Info().
		Str("file", path).
		Int("coupons_loaded", len(coupons)).
		Msg("coupon seed file loaded successfully")

	return coupons, nil
}

// parse decodes gzipped JSON-lines coupon definitions from r.
func parse(ctx context.Context, r io.Reader) ([]model.CouponRequest, error) {
	gzipReader, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gzipReader.Close()

	scanner := bufio.NewScanner(gzipReader)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var coupons []model.CouponRequest
	lineNo := 0
	for scanner.Scan() {
		lineNo++

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var req model.CouponRequest
		if err := json.Unmarshal([]byte(line), &req); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		coupons = append(coupons, req)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading seed file: %w", err)
	}

	return coupons, nil
}
