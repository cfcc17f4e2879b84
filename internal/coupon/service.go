// Package coupon implements coupon validation and administration on top of
// the coupon repository and the pricing engine. The validation path is
// advisory: it powers the live checkout preview and never consumes a
// redemption. The authoritative re-check happens again at order creation.
package coupon

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"quickbite/internal/model"
	"quickbite/internal/pricing"
	"quickbite/internal/repository"
)

// Service defines coupon validation and admin operations.
type Service interface {
	// Validate checks a coupon code against a cart subtotal and order type
	// and returns the discount the pricing engine would grant. It returns
	// model.ErrCouponNotFound for unknown codes and model.ErrCouponInactive
	// for disabled, out-of-window, or exhausted coupons.
	Validate(ctx context.Context, code string, subtotal decimal.Decimal, orderType model.OrderType) (*model.ValidateCouponResponse, error)

	// Create registers a new coupon after validating its field combination.
	Create(ctx context.Context, req *model.CouponRequest) (*model.Coupon, error)

	// List returns all coupons, newest first.
	List(ctx context.Context) ([]model.Coupon, error)

	// SetActive toggles a coupon's active flag. Returns nil when absent.
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*model.Coupon, error)
}

// service implements Service.
type service struct {
	repo        repository.CouponRepository
	deliveryFee decimal.Decimal
	now         func() time.Time
	logger      zerolog.Logger
}

// NewService creates a coupon service. deliveryFee is the configured base fee
// for delivery orders, needed so free-delivery previews report the right waiver.
func NewService(repo repository.CouponRepository, deliveryFee decimal.Decimal, logger zerolog.Logger) Service {
	return &service{
		repo:        repo,
		deliveryFee: deliveryFee,
		now:         time.Now,
		logger:      logger.With().Str("service", "coupon").Logger(),
	}
}

// Validate checks a coupon code and computes its discount preview.
func (s *service) Validate(ctx context.Context, code string, subtotal decimal.Decimal, orderType model.OrderType) (*model.ValidateCouponResponse, error) {
	if !orderType.Valid() {
		return nil, model.ErrInvalidOrderType
	}
	if subtotal.IsNegative() {
		return nil, model.ErrInvalidUnitPrice
	}

	normalized := model.NormalizeCouponCode(code)
	c, err := s.repo.FindByCode(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to look up coupon: %w", err)
	}
	if c == nil {
		s.logger.Debug().Str("code", normalized).Msg("coupon not found")
		return nil, model.ErrCouponNotFound
	}
	if !c.EligibleAt(s.now()) {
		s.logger.Debug().
			Str("code", normalized).
			Bool("active", c.Active).
			Msg("coupon not eligible")
		return nil, model.ErrCouponInactive
	}

	quote, err := pricing.ComputeFromSubtotal(subtotal, orderType, c, s.deliveryFee)
	if err != nil {
		return nil, err
	}

	freeDelivery := c.Kind == model.CouponFreeDelivery && orderType == model.OrderTypeDelivery

	s.logger.Debug().
		Str("code", normalized).
		Str("discount", quote.Discount.String()).
		Bool("free_delivery", freeDelivery).
		Msg("coupon validated")

	return &model.ValidateCouponResponse{
		Valid:        true,
		Coupon:       model.CouponSummary{Code: c.Code, Kind: c.Kind},
		Discount:     quote.Discount,
		FreeDelivery: freeDelivery,
	}, nil
}

// Create registers a new coupon.
func (s *service) Create(ctx context.Context, req *model.CouponRequest) (*model.Coupon, error) {
	if err := validateCouponRequest(req); err != nil {
		s.logger.Warn().Err(err).Str("code", req.Code).Msg("invalid coupon request")
		return nil, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	maxDiscount := req.MaxDiscount
	if maxDiscount.IsZero() {
		maxDiscount = model.DefaultMaxDiscount
	}

	c := &model.Coupon{
		ID:             uuid.New(),
		Code:           model.NormalizeCouponCode(req.Code),
		Kind:           req.Kind,
		Value:          req.Value,
		MinSubtotal:    req.MinSubtotal,
		MaxDiscount:    maxDiscount,
		Active:         active,
		ValidFrom:      req.ValidFrom,
		ValidUntil:     req.ValidUntil,
		MaxRedemptions: req.MaxRedemptions,
		CreatedAt:      s.now(),
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("code", c.Code).
		Str("kind", string(c.Kind)).
		Msg("coupon created")

	return c, nil
}

// List returns all coupons.
func (s *service) List(ctx context.Context) ([]model.Coupon, error) {
	return s.repo.List(ctx)
}

// SetActive toggles a coupon's active flag.
func (s *service) SetActive(ctx context.Context, id uuid.UUID, active bool) (*model.Coupon, error) {
	return s.repo.SetActive(ctx, id, active)
}

// validateCouponRequest rejects malformed coupon field combinations.
func validateCouponRequest(req *model.CouponRequest) error {
	if req == nil || model.NormalizeCouponCode(req.Code) == "" {
		return model.ErrInvalidCouponFields
	}
	if req.MinSubtotal.IsNegative() || req.MaxDiscount.IsNegative() || req.MaxRedemptions < 0 {
		return model.ErrInvalidCouponFields
	}
	if req.ValidFrom != nil && req.ValidUntil != nil && req.ValidUntil.Before(*req.ValidFrom) {
		return model.ErrInvalidCouponFields
	}

	switch req.Kind {
	case model.CouponPercent:
		if req.Value.LessThanOrEqual(decimal.Zero) || req.Value.GreaterThan(decimal.NewFromInt(100)) {
			return model.ErrInvalidCouponFields
		}
	case model.CouponFlat:
		if req.Value.LessThanOrEqual(decimal.Zero) {
			return model.ErrInvalidCouponFields
		}
	case model.CouponFreeDelivery:
		// Value carries no meaning for free delivery.
	default:
		return model.ErrInvalidCouponFields
	}

	return nil
}
