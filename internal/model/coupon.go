package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CouponKind identifies how a coupon's value is interpreted.
type CouponKind string

const (
	// CouponPercent discounts a percentage of the subtotal, capped at MaxDiscount.
	CouponPercent CouponKind = "PERCENT"
	// CouponFlat discounts a fixed amount once the subtotal reaches MinSubtotal.
	CouponFlat CouponKind = "FLAT"
	// CouponFreeDelivery waives the delivery fee on delivery orders.
	CouponFreeDelivery CouponKind = "FREE_DELIVERY"
)

// DefaultMaxDiscount is the discount cap applied to percent coupons that do
// not specify their own.
var DefaultMaxDiscount = decimal.NewFromInt(100000)

// Coupon represents an admin-managed discount rule. Coupons are never deleted
// in normal operation, only toggled inactive.
type Coupon struct {
	ID             uuid.UUID       `json:"id" db:"id"`
	Code           string          `json:"code" db:"code"`
	Kind           CouponKind      `json:"kind" db:"kind"`
	Value          decimal.Decimal `json:"value" db:"value"`
	MinSubtotal    decimal.Decimal `json:"minSubtotal" db:"min_subtotal"`
	MaxDiscount    decimal.Decimal `json:"maxDiscount" db:"max_discount"`
	Active         bool            `json:"active" db:"active"`
	ValidFrom      *time.Time      `json:"validFrom,omitempty" db:"valid_from"`
	ValidUntil     *time.Time      `json:"validUntil,omitempty" db:"valid_until"`
	MaxRedemptions int             `json:"maxRedemptions" db:"max_redemptions"`
	RedeemedCount  int             `json:"redeemedCount" db:"redeemed_count"`
	CreatedAt      time.Time       `json:"createdAt" db:"created_at"`
}

// NormalizeCouponCode maps a user-supplied coupon code to its stored form.
// Codes are case-insensitive and stored uppercase.
func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// EligibleAt reports whether the coupon can be applied at the given instant.
// A missing window bound is unbounded on that side. A redemption cap of zero
// means unlimited redemptions.
func (c *Coupon) EligibleAt(now time.Time) bool {
	if !c.Active {
		return false
	}
	if c.ValidFrom != nil && now.Before(*c.ValidFrom) {
		return false
	}
	if c.ValidUntil != nil && now.After(*c.ValidUntil) {
		return false
	}
	if c.MaxRedemptions > 0 && c.RedeemedCount >= c.MaxRedemptions {
		return false
	}
	return true
}

// CouponSummary is the client-facing view of a coupon returned by the
// validation preview endpoint.
type CouponSummary struct {
	Code string     `json:"code"`
	Kind CouponKind `json:"kind"`
}

// CouponRequest is the admin payload for creating a coupon.
type CouponRequest struct {
	Code           string          `json:"code"`
	Kind           CouponKind      `json:"kind"`
	Value          decimal.Decimal `json:"value"`
	MinSubtotal    decimal.Decimal `json:"minSubtotal"`
	MaxDiscount    decimal.Decimal `json:"maxDiscount"`
	Active         *bool           `json:"active,omitempty"`
	ValidFrom      *time.Time      `json:"validFrom,omitempty"`
	ValidUntil     *time.Time      `json:"validUntil,omitempty"`
	MaxRedemptions int             `json:"maxRedemptions"`
}

// ValidateCouponRequest is the payload for the public discount preview call.
type ValidateCouponRequest struct {
	Code      string          `json:"code"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	OrderType OrderType       `json:"orderType"`
}

// ValidateCouponResponse is the verdict returned by the preview call.
type ValidateCouponResponse struct {
	Valid        bool            `json:"valid"`
	Coupon       CouponSummary   `json:"coupon"`
	Discount     decimal.Decimal `json:"discount"`
	FreeDelivery bool            `json:"freeDelivery"`
}
