package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"quickbite/internal/model"
)

// couponRepository implements the CouponRepository interface using PostgreSQL.
type couponRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCouponRepository creates a new PostgreSQL-backed coupon repository.
func NewCouponRepository(pool *pgxpool.Pool, logger zerolog.Logger) CouponRepository {
	return &couponRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "coupon").Logger(),
	}
}

const couponColumns = `
	id, code, kind, value, min_subtotal, max_discount, active,
	valid_from, valid_until, max_redemptions, redeemed_count, created_at
`

func scanCoupon(row pgx.Row) (*model.Coupon, error) {
	var c model.Coupon
	err := row.Scan(
		&c.ID, &c.Code, &c.Kind, &c.Value, &c.MinSubtotal, &c.MaxDiscount,
		&c.Active, &c.ValidFrom, &c.ValidUntil, &c.MaxRedemptions,
		&c.RedeemedCount, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// FindByCode retrieves a coupon by its normalized (uppercase) code.
func (r *couponRepository) FindByCode(ctx context.Context, code string) (*model.Coupon, error) {
	query := `SELECT ` + couponColumns + ` FROM coupons WHERE code = $1`

	c, err := scanCoupon(r.pool.QueryRow(ctx, query, code))
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("code", code).Msg("coupon not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("code", code).Msg("failed to query coupon")
		return nil, fmt.Errorf("failed to query coupon: %w", err)
	}

	return c, nil
}

// List retrieves all coupons, newest first.
func (r *couponRepository) List(ctx context.Context) ([]model.Coupon, error) {
	query := `SELECT ` + couponColumns + ` FROM coupons ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query coupons")
		return nil, fmt.Errorf("failed to query coupons: %w", err)
	}
	defer rows.Close()

	var coupons []model.Coupon
	for rows.Next() {
		c, err := scanCoupon(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan coupon row")
			return nil, fmt.Errorf("failed to scan coupon: %w", err)
		}
		coupons = append(coupons, *c)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating coupon rows")
		return nil, fmt.Errorf("error iterating coupons: %w", err)
	}

	return coupons, nil
}

// Create inserts a new coupon record.
func (r *couponRepository) Create(ctx context.Context, c *model.Coupon) error {
	query := `
		INSERT INTO coupons (
			id, code, kind, value, min_subtotal, max_discount, active,
			valid_from, valid_until, max_redemptions, redeemed_count, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.pool.Exec(ctx, query,
		c.ID, c.Code, c.Kind, c.Value, c.MinSubtotal, c.MaxDiscount,
		c.Active, c.ValidFrom, c.ValidUntil, c.MaxRedemptions,
		c.RedeemedCount, c.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			r.logger.Debug().Str("code", c.Code).Msg("duplicate coupon code")
			return model.ErrCouponExists
		}
		r.logger.Error().Err(err).Str("code", c.Code).Msg("failed to create coupon")
		return fmt.Errorf("failed to create coupon: %w", err)
	}

	r.logger.Debug().Str("code", c.Code).Msg("coupon created")
	return nil
}

// SetActive toggles a coupon's active flag.
func (r *couponRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) (*model.Coupon, error) {
	query := `
		UPDATE coupons SET active = $2
		WHERE id = $1
		RETURNING ` + couponColumns

	c, err := scanCoupon(r.pool.QueryRow(ctx, query, id, active))
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("coupon_id", id.String()).Msg("coupon not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("coupon_id", id.String()).Msg("failed to update coupon")
		return nil, fmt.Errorf("failed to update coupon: %w", err)
	}

	r.logger.Info().
		Str("coupon_id", id.String()).
		Bool("active", active).
		Msg("coupon active flag updated")

	return c, nil
}

// ClaimRedemption atomically increments a capped coupon's redemption count.
// The WHERE guard makes two racing checkouts serialize on the row: only one
// claims the final redemption of a nearly exhausted coupon.
func (r *couponRepository) ClaimRedemption(ctx context.Context, code string) (bool, error) {
	query := `
		UPDATE coupons
		SET redeemed_count = redeemed_count + 1
		WHERE code = $1
		  AND (max_redemptions = 0 OR redeemed_count < max_redemptions)
	`

	tag, err := r.pool.Exec(ctx, query, code)
	if err != nil {
		r.logger.Error().Err(err).Str("code", code).Msg("failed to claim coupon redemption")
		return false, fmt.Errorf("failed to claim coupon redemption: %w", err)
	}

	claimed := tag.RowsAffected() > 0
	if !claimed {
		r.logger.Debug().Str("code", code).Msg("coupon redemption cap exhausted")
	}
	return claimed, nil
}

// isUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
