package cart

import (
	"context"
	"testing"

	"aurelia_back_end/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memPersister struct {
	carts map[string]models.Cart
	saves int
}

func newMemPersister() *memPersister {
	return &memPersister{carts: map[string]models.Cart{}}
}

func (m *memPersister) Save(_ context.Context, sessionID string, c models.Cart) error {
	m.saves++
	m.carts[sessionID] = c
	return nil
}

func (m *memPersister) Load(_ context.Context, sessionID string) (models.Cart, bool, error) {
	c, ok := m.carts[sessionID]
	return c, ok, nil
}

func ring(price float64) models.CartItem {
	return models.CartItem{ProductID: "r1", Name: "Gold Ring", Slug: "gold-ring", Price: price}
}

func loadStore(t *testing.T, p Persister) *Store {
	t.Helper()
	s, err := Load(context.Background(), p, "sess-1")
	require.NoError(t, err)
	return s
}

func TestLoad_FreshSessionStartsEmpty(t *testing.T) {
	s := loadStore(t, newMemPersister())
	c := s.Cart()
	assert.Empty(t, c.Items)
	assert.Equal(t, models.PaymentPending, c.PaymentStatus)
	assert.Equal(t, 0.0, c.TotalPrice)
}

func TestIncrease_NewLineThenBump(t *testing.T) {
	ctx := context.Background()
	s := loadStore(t, newMemPersister())

	require.NoError(t, s.Increase(ctx, ring(600), 5))
	require.NoError(t, s.Increase(ctx, ring(600), 5))

	c := s.Cart()
	require.Len(t, c.Items, 1)
	assert.Equal(t, 2, c.Items[0].Quantity)
	assert.Equal(t, 1200.0, c.ItemsPrice)
	assert.Equal(t, 0.0, c.ShippingPrice)
	assert.Equal(t, 180.0, c.TaxPrice)
}

func TestIncrease_RespectsStock(t *testing.T) {
	ctx := context.Background()
	s := loadStore(t, newMemPersister())

	require.NoError(t, s.Increase(ctx, ring(600), 1))
	err := s.Increase(ctx, ring(600), 1)
	assert.ErrorIs(t, err, ErrQuantityExceedsStock)
	assert.Equal(t, 1, s.Cart().Items[0].Quantity)
}

func TestDecrease_RemovesLineAtZero(t *testing.T) {
	ctx := context.Background()
	s := loadStore(t, newMemPersister())

	require.NoError(t, s.Increase(ctx, ring(600), -1))
	require.NoError(t, s.Decrease(ctx, "gold-ring"))
	assert.Empty(t, s.Cart().Items)
	assert.Equal(t, 0.0, s.Cart().TotalPrice)
}

func TestIncreaseDecrease_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := loadStore(t, newMemPersister())

	require.NoError(t, s.Increase(ctx, ring(450), -1))
	before := s.Cart()

	for i := 0; i < 3; i++ {
		require.NoError(t, s.Increase(ctx, ring(450), -1))
	}
	for i := 0; i < 3; i++ {
		require.NoError(t, s.Decrease(ctx, "gold-ring"))
	}

	assert.Equal(t, before, s.Cart())
}

func TestApplyCoupon_ThresholdMet(t *testing.T) {
	ctx := context.Background()
	s := loadStore(t, newMemPersister())
	require.NoError(t, s.Increase(ctx, ring(1200), -1))

	discount, err := s.ApplyCoupon(ctx, "FIRST500")
	require.NoError(t, err)
	assert.Equal(t, 500.0, discount)
	// 1200 + 0 shipping + 180 tax - 500
	assert.Equal(t, 880.0, s.Cart().TotalPrice)
}

func TestApplyCoupon_UnknownCodeIsSilentNoop(t *testing.T) {
	ctx := context.Background()
	s := loadStore(t, newMemPersister())
	require.NoError(t, s.Increase(ctx, ring(1200), -1))
	before := s.Cart()

	discount, err := s.ApplyCoupon(ctx, "NOTACODE")
	require.NoError(t, err)
	assert.Equal(t, 0.0, discount)
	assert.Equal(t, before, s.Cart())
}

func TestApplyCoupon_BelowThresholdIsNoop(t *testing.T) {
	ctx := context.Background()
	s := loadStore(t, newMemPersister())
	require.NoError(t, s.Increase(ctx, ring(999), -1))

	discount, err := s.ApplyCoupon(ctx, "FIRST500")
	require.NoError(t, err)
	assert.Equal(t, 0.0, discount)
	assert.Empty(t, s.Cart().CouponCode)
}

func TestRemoveCoupon_RestoresPreCouponTotal(t *testing.T) {
	ctx := context.Background()
	s := loadStore(t, newMemPersister())
	require.NoError(t, s.Increase(ctx, ring(800), -1))
	before := s.Cart().TotalPrice

	_, err := s.ApplyCoupon(ctx, "WELCOME200")
	require.NoError(t, err)
	require.NotEqual(t, before, s.Cart().TotalPrice)

	require.NoError(t, s.RemoveCoupon(ctx))
	assert.Equal(t, before, s.Cart().TotalPrice)
	assert.Equal(t, 0.0, s.Cart().CouponDiscount)
}

func TestFlatDiscount_AppliedAutomaticallyAndStacks(t *testing.T) {
	ctx := context.Background()
	s := loadStore(t, newMemPersister())
	for i := 0; i < 3; i++ {
		require.NoError(t, s.Increase(ctx, ring(1000), -1))
	}

	c := s.Cart()
	assert.Equal(t, 300.0, c.DiscountPrice)

	_, err := s.ApplyCoupon(ctx, "FIRST500")
	require.NoError(t, err)
	c = s.Cart()
	assert.Equal(t, 500.0, c.CouponDiscount)
	assert.Equal(t, 300.0, c.DiscountPrice)
	// 3000 + 0 + 450 - 500 - 300
	assert.Equal(t, 2650.0, c.TotalPrice)
}

func TestClear_KeepsPaymentStatus(t *testing.T) {
	ctx := context.Background()
	s := loadStore(t, newMemPersister())
	require.NoError(t, s.Increase(ctx, ring(600), -1))
	require.NoError(t, s.SetPaymentStatus(ctx, models.PaymentSuccess))

	require.NoError(t, s.Clear(ctx))
	c := s.Cart()
	assert.Empty(t, c.Items)
	assert.Equal(t, models.PaymentSuccess, c.PaymentStatus)
}

func TestStore_SurvivesReload(t *testing.T) {
	ctx := context.Background()
	p := newMemPersister()
	s := loadStore(t, p)
	require.NoError(t, s.Increase(ctx, ring(600), -1))
	require.NoError(t, s.SaveShippingAddress(ctx, models.ShippingAddress{City: "Jaipur"}))

	reloaded := loadStore(t, p)
	assert.Equal(t, s.Cart(), reloaded.Cart())
}
