// Package pricing implements the order pricing engine: pure functions that
// turn line items, an order type, and an optional coupon into the four
// monetary totals. Both the coupon preview endpoint and the authoritative
// order creation path call into this package, so the numbers a customer sees
// at checkout always match the numbers the server persists.
package pricing

import (
	"github.com/shopspring/decimal"

	"quickbite/internal/model"
)

var hundred = decimal.NewFromInt(100)

// Quote is the result of a pricing computation.
type Quote struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	Discount    decimal.Decimal `json:"discount"`
	DeliveryFee decimal.Decimal `json:"deliveryFee"`
	Total       decimal.Decimal `json:"total"`
}

// Subtotal sums unitPrice * quantity across the given items. It rejects
// quantities below one and negative unit prices.
func Subtotal(items []model.LineItem) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, item := range items {
		if item.Quantity < 1 {
			return decimal.Zero, model.ErrInvalidQuantity
		}
		if item.UnitPrice.IsNegative() {
			return decimal.Zero, model.ErrInvalidUnitPrice
		}
		line := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		sum = sum.Add(line)
	}
	return sum, nil
}

// Compute prices a cart of line items. A nil coupon means no discount.
// deliveryFee is the configured base fee for delivery orders; pickup orders
// never incur it.
func Compute(items []model.LineItem, orderType model.OrderType, coupon *model.Coupon, deliveryFee decimal.Decimal) (Quote, error) {
	subtotal, err := Subtotal(items)
	if err != nil {
		return Quote{}, err
	}
	return ComputeFromSubtotal(subtotal, orderType, coupon, deliveryFee)
}

// ComputeFromSubtotal prices an order given a precomputed subtotal. This is
// the shared kernel behind Compute and the coupon preview path: given the
// same subtotal, coupon state, and order type, it always yields the same
// quote.
func ComputeFromSubtotal(subtotal decimal.Decimal, orderType model.OrderType, coupon *model.Coupon, deliveryFee decimal.Decimal) (Quote, error) {
	if subtotal.IsNegative() {
		return Quote{}, model.ErrInvalidUnitPrice
	}
	if !orderType.Valid() {
		return Quote{}, model.ErrInvalidOrderType
	}

	fee := decimal.Zero
	if orderType == model.OrderTypeDelivery {
		fee = deliveryFee
	}

	discount := decimal.Zero
	if coupon != nil {
		switch coupon.Kind {
		case model.CouponPercent:
			discount = subtotal.Mul(coupon.Value).Div(hundred)
			limit := coupon.MaxDiscount
			if limit.IsZero() {
				limit = model.DefaultMaxDiscount
			}
			discount = decimal.Min(discount, limit)
		case model.CouponFlat:
			// Below the threshold the coupon is a silent no-op, not an error.
			if subtotal.GreaterThanOrEqual(coupon.MinSubtotal) {
				discount = coupon.Value
			}
		case model.CouponFreeDelivery:
			fee = decimal.Zero
		default:
			return Quote{}, model.ErrInvalidCouponFields
		}
	}
	discount = floorAtZero(discount).Round(2)

	total := subtotal.Add(fee).Sub(discount)
	// A misconfigured coupon must never drive the total negative.
	total = floorAtZero(total).Round(2)

	return Quote{
		Subtotal:    subtotal.Round(2),
		Discount:    discount,
		DeliveryFee: fee.Round(2),
		Total:       total,
	}, nil
}

func floorAtZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
