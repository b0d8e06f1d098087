package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/hardware-storefront/internal/domain/entity"
	"github.com/yourusername/hardware-storefront/internal/domain/repository"
	"github.com/yourusername/hardware-storefront/internal/infrastructure/storage"
)

func newOrderFixture(t *testing.T) (OrderUseCase, repository.ProductRepository, repository.CustomerRepository) {
	t.Helper()
	products := storage.NewMemoryProductRepository()
	customers := storage.NewMemoryCustomerRepository()
	uc, err := NewOrderUseCase(storage.NewMemoryOrderRepository(), products, customers, 1)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, products.Save(ctx, entity.Product{ID: "pc", Title: "Gaming PC", Price: 5000}))
	require.NoError(t, products.Save(ctx, entity.Product{ID: "mouse", Title: "Mouse", Price: 90}))
	return uc, products, customers
}

func TestOrderUseCase_CreateSnapshotsProducts(t *testing.T) {
	ctx := context.Background()
	uc, products, _ := newOrderFixture(t)

	order, err := uc.Create(ctx, OrderDraft{
		CustomerName:  "Ana",
		CustomerPhone: "+55 11 9999",
		Items: []OrderLine{
			{ProductID: "pc", Quantity: 1},
			{ProductID: "mouse", Quantity: 2},
		},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, int64(1), order.Number)
	assert.Equal(t, entity.OrderPending, order.Status)
	assert.InDelta(t, 5180, order.Total, 1e-9)
	assert.Equal(t, "Gaming PC", order.Items[0].Title)

	// later price changes do not touch the order
	require.NoError(t, products.Save(ctx, entity.Product{ID: "pc", Title: "Gaming PC v2", Price: 6000}))
	got, err := uc.Get(ctx, order.ID)
	require.NoError(t, err)
	assert.InDelta(t, 5000, got.Items[0].UnitPrice, 1e-9)

	next, err := uc.Create(ctx, OrderDraft{CustomerName: "Bia", CustomerPhone: "1", Items: []OrderLine{{ProductID: "mouse", Quantity: 1}}})
	require.NoError(t, err)
	assert.Equal(t, int64(2), next.Number)
	assert.NotEqual(t, order.ID, next.ID)
}

func TestOrderUseCase_CreateValidates(t *testing.T) {
	ctx := context.Background()
	uc, _, customers := newOrderFixture(t)

	cases := map[string]OrderDraft{
		"no items":      {CustomerName: "Ana", CustomerPhone: "1"},
		"zero quantity": {CustomerName: "Ana", CustomerPhone: "1", Items: []OrderLine{{ProductID: "pc"}}},
		"unknown item":  {CustomerName: "Ana", CustomerPhone: "1", Items: []OrderLine{{ProductID: "ghost", Quantity: 1}}},
		"no name":       {CustomerPhone: "1", Items: []OrderLine{{ProductID: "pc", Quantity: 1}}},
		"no phone":      {CustomerName: "Ana", Items: []OrderLine{{ProductID: "pc", Quantity: 1}}},
	}
	for name, draft := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := uc.Create(ctx, draft)
			assert.ErrorIs(t, err, repository.ErrInvalid)
		})
	}

	require.NoError(t, customers.Create(ctx, entity.Customer{ID: "c1", Name: "Carla", Email: "c@x.com", Phone: "777"}))
	order, err := uc.Create(ctx, OrderDraft{CustomerID: "c1", Items: []OrderLine{{ProductID: "pc", Quantity: 1}}})
	require.NoError(t, err)
	assert.Equal(t, "Carla", order.CustomerName)
	assert.Equal(t, "777", order.CustomerPhone)
}

func TestOrderUseCase_StatusTransitions(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newOrderFixture(t)

	order, err := uc.Create(ctx, OrderDraft{CustomerName: "Ana", CustomerPhone: "1", Items: []OrderLine{{ProductID: "pc", Quantity: 1}}})
	require.NoError(t, err)

	_, err = uc.UpdateStatus(ctx, order.ID, entity.OrderShipped)
	assert.ErrorIs(t, err, repository.ErrInvalid, "pending cannot ship")

	for _, next := range []entity.OrderStatus{entity.OrderConfirmed, entity.OrderShipped, entity.OrderDelivered} {
		updated, err := uc.UpdateStatus(ctx, order.ID, next)
		require.NoError(t, err)
		assert.Equal(t, next, updated.Status)
	}

	_, err = uc.UpdateStatus(ctx, order.ID, entity.OrderCancelled)
	assert.ErrorIs(t, err, repository.ErrInvalid, "delivered is final")

	_, err = uc.UpdateStatus(ctx, order.ID, "lost")
	assert.ErrorIs(t, err, repository.ErrInvalid)

	delivered, err := uc.List(ctx, entity.OrderDelivered)
	require.NoError(t, err)
	assert.Len(t, delivered, 1)
}

type recordingNotifier struct {
	mu     sync.Mutex
	orders []int64
	failOn int64
}

func (n *recordingNotifier) NotifyNewOrder(_ context.Context, order entity.Order) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if order.Number == n.failOn {
		return errors.New("telegram down")
	}
	n.orders = append(n.orders, order.Number)
	return nil
}

func TestOrderWatcher_PollNotifiesOnlyNewOrders(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newOrderFixture(t)
	draft := OrderDraft{CustomerName: "Ana", CustomerPhone: "1", Items: []OrderLine{{ProductID: "mouse", Quantity: 1}}}

	_, err := uc.Create(ctx, draft)
	require.NoError(t, err)

	notifier := &recordingNotifier{failOn: 3}
	w := NewOrderWatcher(uc, notifier, time.Minute)
	w.since = time.Now().Add(-time.Hour)

	n, err := w.Poll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = w.Poll(ctx)
	require.NoError(t, err)
	assert.Zero(t, n, "already seen")

	time.Sleep(2 * time.Millisecond)
	_, err = uc.Create(ctx, draft)
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	_, err = uc.Create(ctx, draft)
	require.NoError(t, err)

	// a failed notification is skipped, not retried
	n, err = w.Poll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []int64{1, 2}, notifier.orders)

	n, err = w.Poll(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestOrderWatcher_PollFollowsNumberNotTimestamp(t *testing.T) {
	ctx := context.Background()
	orders := storage.NewMemoryOrderRepository()
	uc, err := NewOrderUseCase(orders, storage.NewMemoryProductRepository(), nil, 1)
	require.NoError(t, err)

	notifier := &recordingNotifier{}
	w := NewOrderWatcher(uc, notifier, time.Minute)
	stamped := w.since.Add(time.Second)

	// the later-stamped order is inserted first
	late := &entity.Order{ID: "late", CreatedAt: stamped.Add(time.Second)}
	require.NoError(t, orders.Create(ctx, late))
	n, err := w.Poll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	early := &entity.Order{ID: "early", CreatedAt: stamped}
	require.NoError(t, orders.Create(ctx, early))
	n, err = w.Poll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []int64{1, 2}, notifier.orders)

	// orders from before the watcher started are not announced
	w2 := NewOrderWatcher(uc, &recordingNotifier{}, time.Minute)
	w2.since = stamped.Add(time.Hour)
	n, err = w2.Poll(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestOrderWatcher_RunStopsOnCancel(t *testing.T) {
	uc, _, _ := newOrderFixture(t)
	w := NewOrderWatcher(uc, &recordingNotifier{}, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop")
	}
}
