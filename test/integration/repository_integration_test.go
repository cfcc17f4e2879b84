package integration

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickbite/internal/model"
	"quickbite/internal/repository"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func strPtr(s string) *string { return &s }

func TestMenuRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	repo := repository.NewMenuRepository(testDB.Pool, zerolog.Nop())
	ctx := context.Background()

	t.Run("GetAll returns seeded items", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedMenuItems(t, testDB.Pool)

		items, err := repo.GetAll(ctx, 10, 0)
		require.NoError(t, err)
		assert.Len(t, items, 5)
	})

	t.Run("GetAll with pagination", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedMenuItems(t, testDB.Pool)

		items, err := repo.GetAll(ctx, 2, 0)
		require.NoError(t, err)
		assert.Len(t, items, 2)

		items, err = repo.GetAll(ctx, 2, 4)
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})

	t.Run("GetByID returns the item", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedMenuItems(t, testDB.Pool)

		item, err := repo.GetByID(ctx, "m-1")
		require.NoError(t, err)
		require.NotNil(t, item)
		assert.Equal(t, "Veg Burger", item.Name)
		assert.True(t, item.Price.Equal(dec(t, "99")), "price %s", item.Price)
	})

	t.Run("GetByID returns nil for unknown item", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		item, err := repo.GetByID(ctx, "ghost")
		require.NoError(t, err)
		assert.Nil(t, item)
	})

	t.Run("GetByIDs returns matching items only", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedMenuItems(t, testDB.Pool)

		items, err := repo.GetByIDs(ctx, []string{"m-1", "m-2", "ghost"})
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})
}

func TestCouponRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	repo := repository.NewCouponRepository(testDB.Pool, zerolog.Nop())
	ctx := context.Background()

	newCoupon := func(code string) *model.Coupon {
		return &model.Coupon{
			ID:          uuid.New(),
			Code:        code,
			Kind:        model.CouponPercent,
			Value:       dec(t, "10"),
			MaxDiscount: dec(t, "100"),
			Active:      true,
			CreatedAt:   time.Now().UTC(),
		}
	}

	t.Run("Create and FindByCode round trip", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		created := newCoupon("CHAI10")
		require.NoError(t, repo.Create(ctx, created))

		found, err := repo.FindByCode(ctx, "CHAI10")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, created.ID, found.ID)
		assert.True(t, found.Value.Equal(dec(t, "10")), "value %s", found.Value)
		assert.True(t, found.MaxDiscount.Equal(dec(t, "100")), "max discount %s", found.MaxDiscount)
	})

	t.Run("FindByCode returns nil for unknown code", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		found, err := repo.FindByCode(ctx, "GHOST")
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("Create rejects duplicate codes", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		require.NoError(t, repo.Create(ctx, newCoupon("DUPE")))
		err := repo.Create(ctx, newCoupon("DUPE"))
		assert.ErrorIs(t, err, model.ErrCouponExists)
	})

	t.Run("SetActive toggles the flag", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		c := newCoupon("TOGGLE")
		require.NoError(t, repo.Create(ctx, c))

		updated, err := repo.SetActive(ctx, c.ID, false)
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.False(t, updated.Active)
	})

	t.Run("SetActive returns nil for unknown coupon", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		updated, err := repo.SetActive(ctx, uuid.New(), false)
		require.NoError(t, err)
		assert.Nil(t, updated)
	})

	t.Run("ClaimRedemption enforces the cap", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		c := newCoupon("CAPPED")
		c.MaxRedemptions = 2
		require.NoError(t, repo.Create(ctx, c))

		claimed, err := repo.ClaimRedemption(ctx, "CAPPED")
		require.NoError(t, err)
		assert.True(t, claimed)

		claimed, err = repo.ClaimRedemption(ctx, "CAPPED")
		require.NoError(t, err)
		assert.True(t, claimed)

		claimed, err = repo.ClaimRedemption(ctx, "CAPPED")
		require.NoError(t, err)
		assert.False(t, claimed, "third claim must fail with a cap of 2")
	})

	t.Run("ClaimRedemption without a cap always succeeds", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		require.NoError(t, repo.Create(ctx, newCoupon("UNCAPPED")))

		for i := 0; i < 5; i++ {
			claimed, err := repo.ClaimRedemption(ctx, "UNCAPPED")
			require.NoError(t, err)
			assert.True(t, claimed)
		}
	})
}

func TestOrderRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	repo := repository.NewOrderRepository(testDB.Pool, zerolog.Nop())
	ctx := context.Background()

	newOrder := func(userID string) (*model.Order, []model.LineItem) {
		now := time.Now().UTC()
		order := &model.Order{
			ID:            uuid.New(),
			UserID:        strPtr(userID),
			CustomerName:  "Asha",
			OrderType:     model.OrderTypePickup,
			PaymentMethod: "CARD",
			Subtotal:      dec(t, "198.00"),
			Discount:      dec(t, "19.80"),
			DeliveryFee:   dec(t, "0"),
			Total:         dec(t, "178.20"),
			Status:        model.StatusPlaced,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		items := []model.LineItem{
			{
				ID:        uuid.New(),
				OrderID:   order.ID,
				Name:      "Veg Burger",
				UnitPrice: dec(t, "99.00"),
				Quantity:  2,
			},
		}
		return order, items
	}

	createOrder := func(t *testing.T, order *model.Order, items []model.LineItem) {
		t.Helper()
		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)
		require.NoError(t, repo.CreateOrder(ctx, tx, order))
		require.NoError(t, repo.CreateLineItems(ctx, tx, items))
		require.NoError(t, tx.Commit(ctx))
	}

	t.Run("create and read back an order with items", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		order, items := newOrder("user-1")
		createOrder(t, order, items)

		got, gotItems, err := repo.GetByID(ctx, order.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, order.ID, got.ID)
		assert.True(t, got.Total.Equal(dec(t, "178.20")), "total %s", got.Total)
		require.Len(t, gotItems, 1)
		assert.Equal(t, "Veg Burger", gotItems[0].Name)
		assert.Equal(t, 2, gotItems[0].Quantity)
	})

	t.Run("GetByID returns nil for unknown order", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		got, gotItems, err := repo.GetByID(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, got)
		assert.Nil(t, gotItems)
	})

	t.Run("rolled back order leaves no trace", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		order, items := newOrder("user-1")
		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)
		require.NoError(t, repo.CreateOrder(ctx, tx, order))
		require.NoError(t, repo.CreateLineItems(ctx, tx, items))
		require.NoError(t, tx.Rollback(ctx))

		got, _, err := repo.GetByID(ctx, order.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("ListByOwner returns only the owner's orders", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		mine, mineItems := newOrder("user-1")
		theirs, theirItems := newOrder("user-2")
		createOrder(t, mine, mineItems)
		createOrder(t, theirs, theirItems)

		orders, err := repo.ListByOwner(ctx, "user-1")
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, mine.ID, orders[0].ID)
	})

	t.Run("UpdateStatus changes the status", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		order, items := newOrder("user-1")
		createOrder(t, order, items)

		updated, err := repo.UpdateStatus(ctx, order.ID, model.StatusShipped)
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, model.StatusShipped, updated.Status)
	})

	t.Run("UpdateStatus returns nil for unknown order", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		updated, err := repo.UpdateStatus(ctx, uuid.New(), model.StatusShipped)
		require.NoError(t, err)
		assert.Nil(t, updated)
	})
}
