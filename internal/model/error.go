package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON         = "INVALID_JSON"
	ErrCodeEmptyCart           = "EMPTY_CART"
	ErrCodeInvalidQuantity     = "INVALID_QUANTITY"
	ErrCodeInvalidUnitPrice    = "INVALID_UNIT_PRICE"
	ErrCodeInvalidLineItem     = "INVALID_LINE_ITEM"
	ErrCodeInvalidOrderType    = "INVALID_ORDER_TYPE"
	ErrCodeInvalidStatus       = "INVALID_STATUS"
	ErrCodeCouponNotFound      = "COUPON_NOT_FOUND"
	ErrCodeCouponInactive      = "COUPON_INACTIVE"
	ErrCodeCouponExists        = "COUPON_EXISTS"
	ErrCodeInvalidCouponFields = "INVALID_COUPON_FIELDS"
	ErrCodeMenuItemNotFound    = "MENU_ITEM_NOT_FOUND"
	ErrCodeOrderNotFound       = "ORDER_NOT_FOUND"
	ErrCodeUnauthorised        = "UNAUTHORIZED"
	ErrCodeForbidden           = "FORBIDDEN"
	ErrCodeInternalError       = "INTERNAL_ERROR"
)

// DomainError carries a stable machine-readable code alongside a
// human-readable message.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrEmptyCart           = NewDomainError(ErrCodeEmptyCart, "Order must contain at least one line item")
	ErrInvalidQuantity     = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrInvalidUnitPrice    = NewDomainError(ErrCodeInvalidUnitPrice, "Unit price must not be negative")
	ErrInvalidLineItem     = NewDomainError(ErrCodeInvalidLineItem, "Line item name is required")
	ErrInvalidOrderType    = NewDomainError(ErrCodeInvalidOrderType, "Order type must be PICKUP or DELIVERY")
	ErrInvalidStatus       = NewDomainError(ErrCodeInvalidStatus, "Unknown order status")
	ErrCouponNotFound      = NewDomainError(ErrCodeCouponNotFound, "Coupon not found")
	ErrCouponInactive      = NewDomainError(ErrCodeCouponInactive, "Coupon is not active")
	ErrCouponExists        = NewDomainError(ErrCodeCouponExists, "A coupon with this code already exists")
	ErrInvalidCouponFields = NewDomainError(ErrCodeInvalidCouponFields, "Invalid coupon field combination")
	ErrMenuItemNotFound    = NewDomainError(ErrCodeMenuItemNotFound, "One or more menu items not found")
	ErrOrderNotFound       = NewDomainError(ErrCodeOrderNotFound, "Order not found")
)
