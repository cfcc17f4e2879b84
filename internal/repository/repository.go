package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"quickbite/internal/model"
)

// MenuRepository defines read access to the menu catalog.
type MenuRepository interface {
	// GetAll retrieves available menu items with pagination support.
	GetAll(ctx context.Context, limit, offset int) ([]model.MenuItem, error)

	// GetByID retrieves a single menu item by its ID. Returns nil when absent.
	GetByID(ctx context.Context, id string) (*model.MenuItem, error)

	// GetByIDs retrieves multiple menu items by their IDs.
	GetByIDs(ctx context.Context, ids []string) ([]model.MenuItem, error)
}

// CouponRepository defines data access for coupon records.
type CouponRepository interface {
	// FindByCode retrieves a coupon by its normalized (uppercase) code.
	// Returns nil when no coupon matches.
	FindByCode(ctx context.Context, code string) (*model.Coupon, error)

	// List retrieves all coupons, newest first.
	List(ctx context.Context) ([]model.Coupon, error)

	// Create inserts a new coupon record.
	Create(ctx context.Context, c *model.Coupon) error

	// SetActive toggles a coupon's active flag and returns the updated record.
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*model.Coupon, error)

	// ClaimRedemption atomically increments a capped coupon's redemption
	// count. It returns false when the cap is already exhausted. Coupons
	// without a cap always claim successfully.
	ClaimRedemption(ctx context.Context, code string) (bool, error)
}

// OrderRepository defines data access for orders and their line items.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateOrder inserts a new order within the provided transaction.
	CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// CreateLineItems inserts the order's line items within the provided transaction.
	CreateLineItems(ctx context.Context, tx pgx.Tx, items []model.LineItem) error

	// GetByID retrieves an order by its ID along with its line items.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, []model.LineItem, error)

	// ListByOwner retrieves all orders placed by the given user, newest first.
	ListByOwner(ctx context.Context, userID string) ([]model.Order, error)

	// UpdateStatus sets an order's status and returns the updated order.
	// Returns nil when the order does not exist.
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) (*model.Order, error)
}
