package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCouponCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "chai10", want: "CHAI10"},
		{in: "  CHAI10  ", want: "CHAI10"},
		{in: "ChAi10", want: "CHAI10"},
		{in: "", want: ""},
		{in: "   ", want: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeCouponCode(tt.in), "input %q", tt.in)
	}
}

func TestCouponEligibleAt(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	before := now.Add(-time.Hour)
	after := now.Add(time.Hour)

	tests := []struct {
		name   string
		coupon Coupon
		want   bool
	}{
		{name: "active without window", coupon: Coupon{Active: true}, want: true},
		{name: "inactive", coupon: Coupon{Active: false}, want: false},
		{name: "window open", coupon: Coupon{Active: true, ValidFrom: &before, ValidUntil: &after}, want: true},
		{name: "before window", coupon: Coupon{Active: true, ValidFrom: &after}, want: false},
		{name: "after window", coupon: Coupon{Active: true, ValidUntil: &before}, want: false},
		{name: "only lower bound", coupon: Coupon{Active: true, ValidFrom: &before}, want: true},
		{name: "cap not reached", coupon: Coupon{Active: true, MaxRedemptions: 10, RedeemedCount: 9}, want: true},
		{name: "cap reached", coupon: Coupon{Active: true, MaxRedemptions: 10, RedeemedCount: 10}, want: false},
		{name: "zero cap means unlimited", coupon: Coupon{Active: true, MaxRedemptions: 0, RedeemedCount: 100000}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.coupon.EligibleAt(now))
		})
	}
}

func TestOrderTypeValid(t *testing.T) {
	assert.True(t, OrderTypePickup.Valid())
	assert.True(t, OrderTypeDelivery.Valid())
	assert.False(t, OrderType("").Valid())
	assert.False(t, OrderType("pickup").Valid())
}

func TestOrderStatusValid(t *testing.T) {
	for _, s := range []OrderStatus{
		StatusPlaced, StatusPacking, StatusShipped,
		StatusOutForDelivery, StatusDelivered, StatusCancelled,
	} {
		assert.True(t, s.Valid(), "status %s", s)
	}
	assert.False(t, OrderStatus("REFUNDED").Valid())
	assert.False(t, OrderStatus("").Valid())
}
