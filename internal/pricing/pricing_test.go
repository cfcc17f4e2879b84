package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickbite/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func percentCoupon(value, maxDiscount string) *model.Coupon {
	return &model.Coupon{
		Code:        "PERCENT",
		Kind:        model.CouponPercent,
		Value:       dec(value),
		MaxDiscount: dec(maxDiscount),
	}
}

func flatCoupon(value, minSubtotal string) *model.Coupon {
	return &model.Coupon{
		Code:        "FLAT",
		Kind:        model.CouponFlat,
		Value:       dec(value),
		MinSubtotal: dec(minSubtotal),
	}
}

func freeDeliveryCoupon() *model.Coupon {
	return &model.Coupon{
		Code: "FREESHIP",
		Kind: model.CouponFreeDelivery,
	}
}

func TestSubtotal(t *testing.T) {
	tests := []struct {
		name    string
		items   []model.LineItem
		want    string
		wantErr error
	}{
		{
			name:  "empty cart sums to zero",
			items: nil,
			want:  "0",
		},
		{
			name: "sums price times quantity",
			items: []model.LineItem{
				{Name: "Veg Burger", UnitPrice: dec("99"), Quantity: 2},
				{Name: "Masala Chai", UnitPrice: dec("30.50"), Quantity: 3},
			},
			want: "289.5",
		},
		{
			name: "zero quantity rejected",
			items: []model.LineItem{
				{Name: "Veg Burger", UnitPrice: dec("99"), Quantity: 0},
			},
			wantErr: model.ErrInvalidQuantity,
		},
		{
			name: "negative quantity rejected",
			items: []model.LineItem{
				{Name: "Veg Burger", UnitPrice: dec("99"), Quantity: -1},
			},
			wantErr: model.ErrInvalidQuantity,
		},
		{
			name: "negative unit price rejected",
			items: []model.LineItem{
				{Name: "Veg Burger", UnitPrice: dec("-1"), Quantity: 1},
			},
			wantErr: model.ErrInvalidUnitPrice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Subtotal(tt.items)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(dec(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

func TestCompute_CheckoutExample(t *testing.T) {
	// cart = 2x Veg Burger at 99, pickup, 10% off capped at 100.
	items := []model.LineItem{
		{Name: "Veg Burger", UnitPrice: dec("99"), Quantity: 2},
	}
	coupon := percentCoupon("10", "100")
	coupon.Code = "CHAI10"

	quote, err := Compute(items, model.OrderTypePickup, coupon, dec("20"))
	require.NoError(t, err)

	assert.True(t, quote.Subtotal.Equal(dec("198")), "subtotal %s", quote.Subtotal)
	assert.True(t, quote.Discount.Equal(dec("19.8")), "discount %s", quote.Discount)
	assert.True(t, quote.DeliveryFee.IsZero(), "delivery fee %s", quote.DeliveryFee)
	assert.True(t, quote.Total.Equal(dec("178.2")), "total %s", quote.Total)
}

func TestComputeFromSubtotal(t *testing.T) {
	fee := dec("20")

	tests := []struct {
		name          string
		subtotal      string
		orderType     model.OrderType
		coupon        *model.Coupon
		wantDiscount  string
		wantFee       string
		wantTotal     string
		wantErr       error
	}{
		{
			name:         "no coupon pickup",
			subtotal:     "250",
			orderType:    model.OrderTypePickup,
			wantDiscount: "0",
			wantFee:      "0",
			wantTotal:    "250",
		},
		{
			name:         "no coupon delivery adds fee",
			subtotal:     "250",
			orderType:    model.OrderTypeDelivery,
			wantDiscount: "0",
			wantFee:      "20",
			wantTotal:    "270",
		},
		{
			name:         "percent discount capped at max",
			subtotal:     "1000",
			orderType:    model.OrderTypePickup,
			coupon:       percentCoupon("50", "100"),
			wantDiscount: "100",
			wantFee:      "0",
			wantTotal:    "900",
		},
		{
			name:         "percent discount below cap",
			subtotal:     "500",
			orderType:    model.OrderTypePickup,
			coupon:       percentCoupon("10", "100"),
			wantDiscount: "50",
			wantFee:      "0",
			wantTotal:    "450",
		},
		{
			name:         "percent falls back to default cap when zero",
			subtotal:     "1000",
			orderType:    model.OrderTypePickup,
			coupon:       percentCoupon("50", "0"),
			wantDiscount: "500",
			wantFee:      "0",
			wantTotal:    "500",
		},
		{
			name:         "flat below threshold is a silent no-op",
			subtotal:     "400",
			orderType:    model.OrderTypePickup,
			coupon:       flatCoupon("50", "500"),
			wantDiscount: "0",
			wantFee:      "0",
			wantTotal:    "400",
		},
		{
			name:         "flat threshold boundary is inclusive",
			subtotal:     "500",
			orderType:    model.OrderTypePickup,
			coupon:       flatCoupon("50", "500"),
			wantDiscount: "50",
			wantFee:      "0",
			wantTotal:    "450",
		},
		{
			name:         "free delivery waives fee on delivery",
			subtotal:     "300",
			orderType:    model.OrderTypeDelivery,
			coupon:       freeDeliveryCoupon(),
			wantDiscount: "0",
			wantFee:      "0",
			wantTotal:    "300",
		},
		{
			name:         "free delivery on pickup is a no-op",
			subtotal:     "300",
			orderType:    model.OrderTypePickup,
			coupon:       freeDeliveryCoupon(),
			wantDiscount: "0",
			wantFee:      "0",
			wantTotal:    "300",
		},
		{
			name:         "total clamps at zero when discount exceeds order value",
			subtotal:     "30",
			orderType:    model.OrderTypeDelivery,
			coupon:       flatCoupon("500", "0"),
			wantDiscount: "500",
			wantFee:      "20",
			wantTotal:    "0",
		},
		{
			name:      "invalid order type rejected",
			subtotal:  "100",
			orderType: model.OrderType("DRONE"),
			wantErr:   model.ErrInvalidOrderType,
		},
		{
			name:      "unknown coupon kind rejected",
			subtotal:  "100",
			orderType: model.OrderTypePickup,
			coupon:    &model.Coupon{Code: "WAT", Kind: model.CouponKind("BOGOF")},
			wantErr:   model.ErrInvalidCouponFields,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := ComputeFromSubtotal(dec(tt.subtotal), tt.orderType, tt.coupon, fee)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, quote.Discount.Equal(dec(tt.wantDiscount)), "discount: got %s, want %s", quote.Discount, tt.wantDiscount)
			assert.True(t, quote.DeliveryFee.Equal(dec(tt.wantFee)), "fee: got %s, want %s", quote.DeliveryFee, tt.wantFee)
			assert.True(t, quote.Total.Equal(dec(tt.wantTotal)), "total: got %s, want %s", quote.Total, tt.wantTotal)
		})
	}
}

func TestCompute_TotalNeverNegative(t *testing.T) {
	// Even a badly misconfigured coupon cannot drive the total below zero.
	items := []model.LineItem{
		{Name: "Samosa", UnitPrice: dec("15"), Quantity: 1},
	}

	for _, coupon := range []*model.Coupon{
		flatCoupon("10000", "0"),
		percentCoupon("100", "99999"),
	} {
		quote, err := Compute(items, model.OrderTypeDelivery, coupon, dec("20"))
		require.NoError(t, err)
		assert.False(t, quote.Total.IsNegative(), "coupon %s produced negative total %s", coupon.Code, quote.Total)
	}
}
