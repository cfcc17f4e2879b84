package service

import (
	"context"

	"github.com/google/uuid"

	"quickbite/internal/model"
)

// MenuService defines read operations over the menu catalog.
type MenuService interface {
	// GetAll retrieves available menu items with pagination.
	GetAll(ctx context.Context, limit, offset int) ([]model.MenuItem, error)

	// GetByID retrieves a single menu item by ID. Returns nil when absent.
	GetByID(ctx context.Context, id string) (*model.MenuItem, error)
}

// OrderService defines order placement and management operations.
type OrderService interface {
	// PlaceOrder creates a new order from a checkout submission. All
	// monetary figures are recomputed server-side; client-submitted totals
	// are ignored.
	PlaceOrder(ctx context.Context, req *model.OrderRequest, userID *string) (*model.OrderResponse, error)

	// GetByID retrieves an order with its line items. Returns nil when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.OrderResponse, error)

	// ListByOwner retrieves the orders placed by the given user.
	ListByOwner(ctx context.Context, userID string) ([]model.Order, error)

	// UpdateStatus sets an order's status. Returns nil when the order is absent.
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) (*model.Order, error)
}
