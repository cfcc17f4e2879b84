package service

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

// orderService implements OrderService.
type orderService struct {
	orderRepo   repository.OrderRepository
	menuRepo    repository.MenuRepository
	couponRepo  repository.CouponRepository
	deliveryFee decimal.Decimal
	now         func() time.Time
	logger      zerolog.Logger
}

// NewOrderService creates a new order service. deliveryFee is the configured
// base fee for delivery orders.
func NewOrderService(
	orderRepo repository.OrderRepository,
	menuRepo repository.MenuRepository,
	couponRepo repository.CouponRepository,
	deliveryFee decimal.Decimal,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		menuRepo:    menuRepo,
		couponRepo:  couponRepo,
		deliveryFee: deliveryFee,
		now:         time.Now,
		logger:      logger.With().Str("service", "order").Logger(),
	}
}

// PlaceOrder creates a new order from a checkout submission.
//
// The trust boundary sits here: whatever subtotal, discount, or total the
// client echoed back is discarded, the coupon's eligibility is re-checked
// against live state, and every figure is recomputed by the pricing engine
// before anything is persisted. A coupon that became invalid between the
// checkout preview and submission degrades to zero discount; the order is
// still placed.
func (s *orderService) PlaceOrder(ctx context.Context, req *model.OrderRequest, userID *string) (*model.OrderResponse, error) {
	if err := validateOrderRequest(req); err != nil {
		return nil, err
	}

	items, err := s.snapshotLineItems(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	coupon, couponCode, err := s.resolveCoupon(ctx, req.CouponCode)
	if err != nil {
		return nil, err
	}

	quote, err := pricing.Compute(items, req.OrderType, coupon, s.deliveryFee)
	if err != nil {
		return nil, err
	}

	now := s.now()
	order := &model.Order{
		ID:            uuid.New(),
		UserID:        userID,
		CustomerName:  req.CustomerName,
		Phone:         req.Phone,
		Address:       req.Address,
		OrderType:     req.OrderType,
		PaymentMethod: req.PaymentMethod,
		CouponCode:    couponCode,
		Subtotal:      quote.Subtotal,
		Discount:      quote.Discount,
		DeliveryFee:   quote.DeliveryFee,
		Total:         quote.Total,
		Status:        model.StatusPlaced,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for i := range items {
		items[i].ID = uuid.New()
		items[i].OrderID = order.ID
	}

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if err = s.orderRepo.CreateOrder(ctx, tx, order); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to create order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if err = s.orderRepo.CreateLineItems(ctx, tx, items); err != nil {
		s.logger.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Int("item_count", len(items)).
			Msg("failed to create order line items")
		return nil, fmt.Errorf("failed to create order line items: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Int("item_count", len(items)).
		Str("total", order.Total.String()).
		Msg("order placed")

	return &model.OrderResponse{Order: *order, Items: items}, nil
}

// snapshotLineItems freezes the submitted cart into order line items. Items
// referencing a catalog entry are re-priced from the live menu so a client
// cannot understate a known dish's price; ad-hoc items keep the submitted
// snapshot verbatim.
func (s *orderService) snapshotLineItems(ctx context.Context, reqs []model.LineItemRequest) ([]model.LineItem, error) {
	refIDs := make([]string, 0, len(reqs))
	for _, item := range reqs {
		if item.MenuItemID != nil && *item.MenuItemID != "" {
			refIDs = append(refIDs, *item.MenuItemID)
		}
	}

	catalog := make(map[string]model.MenuItem, len(refIDs))
	if len(refIDs) > 0 {
		fetched, err := s.menuRepo.GetByIDs(ctx, refIDs)
		if err != nil {
			s.logger.Error().Err(err).Int("count", len(refIDs)).Msg("failed to fetch menu items")
			return nil, fmt.Errorf("failed to fetch menu items: %w", err)
		}
		for _, m := range fetched {
			catalog[m.ID] = m
		}
	}

	items := make([]model.LineItem, len(reqs))
	for i, req := range reqs {
		item := model.LineItem{
			MenuItemID:   req.MenuItemID,
			Name:         req.Name,
			UnitPrice:    req.UnitPrice,
			Quantity:     req.Quantity,
			VariantLabel: req.VariantLabel,
		}
		if req.MenuItemID != nil && *req.MenuItemID != "" {
			m, ok := catalog[*req.MenuItemID]
			if !ok {
				s.logger.Warn().Str("menu_item_id", *req.MenuItemID).Msg("unknown menu item reference")
				return nil, model.ErrMenuItemNotFound
			}
			item.Name = m.Name
			item.UnitPrice = m.Price
		}
		items[i] = item
	}

	return items, nil
}

// resolveCoupon re-checks the submitted coupon code against live coupon
// state. An unknown, inactive, expired, or exhausted coupon does not reject
// the order; it degrades to no discount with a null coupon code.
func (s *orderService) resolveCoupon(ctx context.Context, code *string) (*model.Coupon, *string, error) {
	if code == nil || *code == "" {
		return nil, nil, nil
	}

	normalized := model.NormalizeCouponCode(*code)
	c, err := s.couponRepo.FindByCode(ctx, normalized)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to look up coupon: %w", err)
	}
	if c == nil || !c.EligibleAt(s.now()) {
		s.logger.Warn().
			Str("coupon_code", normalized).
			Msg("coupon invalid at submission, placing order without discount")
		return nil, nil, nil
	}

	if c.MaxRedemptions > 0 {
		claimed, err := s.couponRepo.ClaimRedemption(ctx, normalized)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to claim coupon redemption: %w", err)
		}
		if !claimed {
			s.logger.Warn().
				Str("coupon_code", normalized).
				Msg("coupon redemption cap exhausted, placing order without discount")
			return nil, nil, nil
		}
	}

	return c, &normalized, nil
}

// GetByID retrieves an order with its line items.
func (s *orderService) GetByID(ctx context.Context, id uuid.UUID) (*model.OrderResponse, error) {
	order, items, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		return nil, nil
	}
	return &model.OrderResponse{Order: *order, Items: items}, nil
}

// ListByOwner retrieves the orders placed by the given user.
func (s *orderService) ListByOwner(ctx context.Context, userID string) ([]model.Order, error) {
	orders, err := s.orderRepo.ListByOwner(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// UpdateStatus sets an order's status after validating the status value.
func (s *orderService) UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) (*model.Order, error) {
	if !status.Valid() {
		return nil, model.ErrInvalidStatus
	}
	order, err := s.orderRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("order_id", id.String()).
			Str("status", string(status)).
			Msg("failed to update order status")
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	return order, nil
}

// validateOrderRequest validates the checkout submission shape before any
// pricing work happens.
func validateOrderRequest(req *model.OrderRequest) error {
	if req == nil || len(req.Items) == 0 {
		return model.ErrEmptyCart
	}
	if !req.OrderType.Valid() {
		return model.ErrInvalidOrderType
	}
	for _, item := range req.Items {
		if item.Quantity < 1 {
			return model.ErrInvalidQuantity
		}
		if item.UnitPrice.IsNegative() {
			return model.ErrInvalidUnitPrice
		}
		if item.Name == "" && (item.MenuItemID == nil || *item.MenuItemID == "") {
			return model.ErrInvalidLineItem
		}
	}
	return nil
}
