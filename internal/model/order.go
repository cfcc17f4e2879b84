package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderType distinguishes pickup orders from delivery orders.
type OrderType string

const (
	OrderTypePickup   OrderType = "PICKUP"
	OrderTypeDelivery OrderType = "DELIVERY"
)

// Valid reports whether the order type is one of the known values.
func (t OrderType) Valid() bool {
	return t == OrderTypePickup || t == OrderTypeDelivery
}

// OrderStatus is the admin-driven order state. Any status may follow any
// other; DELIVERED and CANCELLED are terminal by convention only.
type OrderStatus string

const (
	StatusPlaced         OrderStatus = "PLACED"
	StatusPacking        OrderStatus = "PACKING"
	StatusShipped        OrderStatus = "SHIPPED"
	StatusOutForDelivery OrderStatus = "OUT_FOR_DELIVERY"
	StatusDelivered      OrderStatus = "DELIVERED"
	StatusCancelled      OrderStatus = "CANCELLED"
)

// Valid reports whether the status is one of the known values.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPlaced, StatusPacking, StatusShipped,
		StatusOutForDelivery, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// LineItem is a snapshot of one ordered item. Name and unit price are frozen
// at order time; later catalog changes never affect a placed order.
type LineItem struct {
	ID           uuid.UUID       `json:"-" db:"id"`
	OrderID      uuid.UUID       `json:"-" db:"order_id"`
	MenuItemID   *string         `json:"menuItemId,omitempty" db:"menu_item_id"`
	Name         string          `json:"name" db:"name"`
	UnitPrice    decimal.Decimal `json:"unitPrice" db:"unit_price"`
	Quantity     int             `json:"quantity" db:"quantity"`
	VariantLabel string          `json:"variantLabel,omitempty" db:"variant_label"`
}

// Order is a placed order. Monetary fields are computed once at creation and
// stored; only the status changes afterwards.
type Order struct {
	ID            uuid.UUID       `json:"id" db:"id"`
	UserID        *string         `json:"userId,omitempty" db:"user_id"`
	CustomerName  string          `json:"customerName" db:"customer_name"`
	Phone         string          `json:"phone,omitempty" db:"phone"`
	Address       string          `json:"address,omitempty" db:"address"`
	OrderType     OrderType       `json:"orderType" db:"order_type"`
	PaymentMethod string          `json:"paymentMethod" db:"payment_method"`
	CouponCode    *string         `json:"couponCode,omitempty" db:"coupon_code"`
	Subtotal      decimal.Decimal `json:"subtotal" db:"subtotal"`
	Discount      decimal.Decimal `json:"discount" db:"discount"`
	DeliveryFee   decimal.Decimal `json:"deliveryFee" db:"delivery_fee"`
	Total         decimal.Decimal `json:"total" db:"total"`
	Status        OrderStatus     `json:"status" db:"status"`
	CreatedAt     time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time       `json:"updatedAt" db:"updated_at"`
}

// LineItemRequest is a single cart line in an order submission.
type LineItemRequest struct {
	MenuItemID   *string         `json:"menuItemId,omitempty"`
	Name         string          `json:"name"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	Quantity     int             `json:"quantity"`
	VariantLabel string          `json:"variantLabel,omitempty"`
}

// OrderRequest is the checkout submission payload. Clients may echo their
// locally previewed totals; those fields are decoded but never trusted. The
// server recomputes every monetary figure from the line items and a fresh
// coupon lookup.
type OrderRequest struct {
	Items         []LineItemRequest `json:"items"`
	OrderType     OrderType         `json:"orderType"`
	CouponCode    *string           `json:"couponCode,omitempty"`
	PaymentMethod string            `json:"paymentMethod"`
	CustomerName  string            `json:"customerName"`
	Phone         string            `json:"phone,omitempty"`
	Address       string            `json:"address,omitempty"`

	// Client-side preview figures, decoded for compatibility and ignored.
	ClientSubtotal *decimal.Decimal `json:"subtotal,omitempty"`
	ClientDiscount *decimal.Decimal `json:"discount,omitempty"`
	ClientTotal    *decimal.Decimal `json:"total,omitempty"`
}

// OrderResponse is the API representation of a stored order with its items.
type OrderResponse struct {
	Order Order      `json:"order"`
	Items []LineItem `json:"items"`
}

// StatusUpdateRequest is the admin payload for changing an order's status.
type StatusUpdateRequest struct {
	Status OrderStatus `json:"status"`
}
