package orders

import (
	"context"
	"errors"
	"testing"

	"aurelia_back_end/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderStore struct {
	byIntent map[string]*models.Order
	inserted []*models.Order
	insertErr error
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{byIntent: map[string]*models.Order{}}
}

func (f *fakeOrderStore) Insert(_ context.Context, o *models.Order) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, o)
	f.byIntent[o.PaymentIntentID] = o
	return nil
}

func (f *fakeOrderStore) FindByPaymentIntent(_ context.Context, intentID string) (*models.Order, error) {
	return f.byIntent[intentID], nil
}

func (f *fakeOrderStore) Delete(_ context.Context, _ string) error { return nil }

type fakeStock struct {
	counts map[string]int // productID -> countInStock
	lines  map[string]int // productID -> inventory_no_of_line (beads)
}

func newFakeStock(counts map[string]int) *fakeStock {
	lines := map[string]int{}
	for id, n := range counts {
		lines[id] = n
	}
	return &fakeStock{counts: counts, lines: lines}
}

func (f *fakeStock) Decrement(_ context.Context, item models.OrderItem) error {
	if f.counts[item.ProductID] < item.Quantity {
		return ErrInsufficientStock
	}
	f.counts[item.ProductID] -= item.Quantity
	if item.ProductType == models.TypeBead {
		f.lines[item.ProductID] -= item.Quantity
	}
	return nil
}

func (f *fakeStock) Restore(_ context.Context, item models.OrderItem) error {
	f.counts[item.ProductID] += item.Quantity
	if item.ProductType == models.TypeBead {
		f.lines[item.ProductID] += item.Quantity
	}
	return nil
}

type fakeLocker struct {
	held     map[string]bool
	acquired int
	released int
}

func newFakeLocker() *fakeLocker { return &fakeLocker{held: map[string]bool{}} }

func (f *fakeLocker) Acquire(_ context.Context, id string) (bool, error) {
	if f.held[id] {
		return false, nil
	}
	f.held[id] = true
	f.acquired++
	return true, nil
}

func (f *fakeLocker) Release(_ context.Context, id string) {
	delete(f.held, id)
	f.released++
}

type fakeCarts struct{ recovered []string }

func (f *fakeCarts) MarkRecovered(_ context.Context, userID string) error {
	f.recovered = append(f.recovered, userID)
	return nil
}

type fakeMailer struct{ sent []models.Order }

func (f *fakeMailer) SendOrderConfirmation(o models.Order) { f.sent = append(f.sent, o) }

func validRequest() CreateRequest {
	return CreateRequest{
		UserID: "u1",
		Items: []models.OrderItem{
			{ProductID: "p1", Name: "Gold Ring", Quantity: 1, Price: 1200, ProductType: models.TypeJewellery},
		},
		TotalAmount:     1480,
		ItemsPrice:      1200,
		TaxPrice:        180,
		ShippingAddress: models.ShippingAddress{Address: "12 MG Road", City: "Jaipur"},
		PersonalInfo:    models.PersonalInfo{Name: "Asha", Email: "asha@example.com"},
		GSTDetails:      models.GSTDetails{},
		PaymentMethod:   "razorpay",
		PaymentIntentID: "pay_abc123",
	}
}

func newService(os OrderStore, stock StockStore, locks IntentLocker, carts AbandonedCartStore, mail Mailer) *Service {
	return &Service{Orders: os, Stock: stock, Locks: locks, AbandonedCarts: carts, Mail: mail}
}

func TestCreate_HappyPath(t *testing.T) {
	store := newFakeOrderStore()
	stock := newFakeStock(map[string]int{"p1": 3})
	locker := newFakeLocker()
	carts := &fakeCarts{}
	mail := &fakeMailer{}
	svc := newService(store, stock, locker, carts, mail)

	order, created, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 2, stock.counts["p1"])
	assert.Equal(t, models.OrderPlaced, order.Status)
	assert.Equal(t, models.PaymentSuccess, order.PaymentStatus)
	require.Len(t, order.StatusHistory, 1)
	assert.Equal(t, "system", order.StatusHistory[0].Actor)
	assert.Equal(t, []string{"u1"}, carts.recovered)
	assert.Len(t, mail.sent, 1)
	assert.Equal(t, 1, locker.released)
}

func TestCreate_ValidationFailures(t *testing.T) {
	svc := newService(newFakeOrderStore(), newFakeStock(nil), newFakeLocker(), nil, nil)

	for name, mutate := range map[string]func(*CreateRequest){
		"no items":            func(r *CreateRequest) { r.Items = nil },
		"zero total":          func(r *CreateRequest) { r.TotalAmount = 0 },
		"no shipping address": func(r *CreateRequest) { r.ShippingAddress = models.ShippingAddress{} },
		"no personal info":    func(r *CreateRequest) { r.PersonalInfo = models.PersonalInfo{} },
		"gst without number":  func(r *CreateRequest) { r.GSTDetails = models.GSTDetails{HasGST: true} },
		"no intent id":        func(r *CreateRequest) { r.PaymentIntentID = "" },
	} {
		t.Run(name, func(t *testing.T) {
			req := validRequest()
			mutate(&req)
			_, _, err := svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestCreate_DuplicateIntentReturnsExistingOrder(t *testing.T) {
	store := newFakeOrderStore()
	stock := newFakeStock(map[string]int{"p1": 3})
	svc := newService(store, stock, newFakeLocker(), nil, nil)

	first, created, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)
	require.True(t, created)

	// a retried submission from the polling page
	second, created, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)
	assert.False(t, created)
	assert.Same(t, first, second)
	assert.Equal(t, 2, stock.counts["p1"], "stock must not be decremented twice")
	assert.Len(t, store.inserted, 1)
}

func TestCreate_ConcurrentSubmissionBlockedByLock(t *testing.T) {
	store := newFakeOrderStore()
	locker := newFakeLocker()
	locker.held["pay_abc123"] = true // another request is mid-reconcile
	svc := newService(store, newFakeStock(map[string]int{"p1": 3}), locker, nil, nil)

	_, _, err := svc.Create(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrPaymentInFlight)
	assert.Empty(t, store.inserted)
}

func TestCreate_InsufficientStockRollsBackEarlierDecrements(t *testing.T) {
	store := newFakeOrderStore()
	stock := newFakeStock(map[string]int{"p1": 5, "p2": 1})
	svc := newService(store, stock, newFakeLocker(), nil, nil)

	req := validRequest()
	req.Items = []models.OrderItem{
		{ProductID: "p1", Name: "Gold Ring", Quantity: 2, Price: 1200, ProductType: models.TypeJewellery},
		{ProductID: "p2", Name: "Pearl String", Quantity: 3, Price: 400, ProductType: models.TypeBead},
	}

	_, _, err := svc.Create(context.Background(), req)
	require.ErrorIs(t, err, ErrInsufficientStock)
	assert.Contains(t, err.Error(), "Pearl String")

	// the first item's decrement was compensated, nothing persisted
	assert.Equal(t, 5, stock.counts["p1"])
	assert.Equal(t, 1, stock.counts["p2"])
	assert.Empty(t, store.inserted)
}

func TestCreate_InsertFailureRestoresStock(t *testing.T) {
	store := newFakeOrderStore()
	store.insertErr = errors.New("write concern timeout")
	stock := newFakeStock(map[string]int{"p1": 3})
	svc := newService(store, stock, newFakeLocker(), nil, nil)

	_, _, err := svc.Create(context.Background(), validRequest())
	require.Error(t, err)
	assert.Equal(t, 3, stock.counts["p1"])
}

func TestCreate_BeadItemsMoveBothCounters(t *testing.T) {
	stock := newFakeStock(map[string]int{"b1": 10})
	svc := newService(newFakeOrderStore(), stock, newFakeLocker(), nil, nil)

	req := validRequest()
	req.Items = []models.OrderItem{
		{ProductID: "b1", Name: "Coral Beads", Quantity: 4, Price: 250, ProductType: models.TypeBead},
	}
	_, _, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 6, stock.counts["b1"])
	assert.Equal(t, 6, stock.lines["b1"])
}

func TestCreate_GuestOrderSkipsAbandonedCarts(t *testing.T) {
	carts := &fakeCarts{}
	svc := newService(newFakeOrderStore(), newFakeStock(map[string]int{"p1": 3}), newFakeLocker(), carts, nil)

	req := validRequest()
	req.UserID = ""
	_, created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Empty(t, carts.recovered)
}
