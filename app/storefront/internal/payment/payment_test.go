package payment

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"WalMate/app/storefront/internal/backend"
	"WalMate/app/storefront/internal/cart"
	"WalMate/app/storefront/internal/mq"
	"WalMate/app/storefront/internal/scope"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/jsonx"
)

type stubBackend struct{}

func (stubBackend) Chat(context.Context, string, backend.ChatReq) (*backend.ChatResp, error) {
	return &backend.ChatResp{}, nil
}

func (stubBackend) ChatHistory(context.Context, string, string) ([]backend.HistoryItem, error) {
	return nil, nil
}

func (stubBackend) Product(context.Context, string) (*backend.Product, error) {
	return &backend.Product{}, nil
}

func (stubBackend) Login(context.Context, backend.LoginReq) (*backend.LoginResp, error) {
	return &backend.LoginResp{AccessToken: "tok"}, nil
}

func (stubBackend) Register(context.Context, backend.RegisterReq) (*backend.RegisterResp, error) {
	return &backend.RegisterResp{}, nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []mq.OrderPlacedEvent
	err    error
}

func (p *recordingPublisher) PublishOrderPlaced(_ context.Context, evt mq.OrderPlacedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
	return p.err
}

type fakeEnqueuer struct {
	mu    sync.Mutex
	tasks []*asynq.Task
	err   error
}

func (f *fakeEnqueuer) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.tasks = append(f.tasks, task)
	return &asynq.TaskInfo{ID: "t1", Type: task.Type()}, nil
}

func newScope(t *testing.T) (*scope.Registry, *scope.Scope) {
	t.Helper()
	r, err := scope.NewRegistry(scope.Conf{}, stubBackend{}, nil)
	require.NoError(t, err)
	sc, err := r.Get("s1")
	require.NoError(t, err)
	return r, sc
}

func TestNewQuote(t *testing.T) {
	tests := []struct {
		subtotal int64
		want     Quote
	}{
		{subtotal: 0, want: Quote{Subtotal: 0, Shipping: 99, Tax: 0, Total: 99}},
		{subtotal: 999, want: Quote{Subtotal: 999, Shipping: 99, Tax: 180, Total: 1278}},
		{subtotal: 1000, want: Quote{Subtotal: 1000, Shipping: 0, Tax: 180, Total: 1180}},
		{subtotal: 2250, want: Quote{Subtotal: 2250, Shipping: 0, Tax: 405, Total: 2655}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NewQuote(tt.subtotal), "subtotal %d", tt.subtotal)
	}
}

func TestCheckout_InlineSettlesAndClearsCart(t *testing.T) {
	r, sc := newScope(t)
	sc.Cart.Add(cart.Product{ID: "a", Name: "A", Price: 1000}, 2)
	sc.Cart.Add(cart.Product{ID: "b", Name: "B", Price: 250}, 1)

	events := &recordingPublisher{}
	checkout := NewCheckout(NewInlineGateway(0, NewSettlement(r, events)))

	receipt, err := checkout.Submit(context.Background(), sc)
	require.NoError(t, err)
	assert.Equal(t, StatusPaid, receipt.Status)
	assert.Equal(t, int64(2655), receipt.Quote.Total)
	assert.Equal(t, int64(0), sc.Cart.Count())
	assert.False(t, sc.CheckoutPending())

	notices := sc.Notices.Drain()
	require.Len(t, notices, 1)
	assert.Equal(t, "Payment Successful!", notices[0].Title)

	require.Len(t, events.events, 1)
	assert.Equal(t, receipt.OrderID, events.events[0].OrderId)
	assert.Len(t, events.events[0].Items, 2)
}

func TestCheckout_EmptyCart(t *testing.T) {
	r, sc := newScope(t)
	checkout := NewCheckout(NewInlineGateway(0, NewSettlement(r, nil)))

	_, err := checkout.Submit(context.Background(), sc)
	assert.ErrorIs(t, err, ErrCartEmpty)
}

func TestCheckout_InlineHonoursContext(t *testing.T) {
	r, sc := newScope(t)
	sc.Cart.Add(cart.Product{ID: "a", Price: 10}, 1)
	checkout := NewCheckout(NewInlineGateway(time.Hour, NewSettlement(r, nil)))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := checkout.Submit(ctx, sc)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// the cart survives and a new checkout may start
	assert.Equal(t, int64(1), sc.Cart.Count())
	assert.False(t, sc.CheckoutPending())
}

func TestCheckout_AsynqSettlesOnce(t *testing.T) {
	r, sc := newScope(t)
	sc.Cart.Add(cart.Product{ID: "a", Name: "A", Price: 500}, 3)

	enq := &fakeEnqueuer{}
	checkout := NewCheckout(NewAsynqGateway(2*time.Second, enq))

	receipt, err := checkout.Submit(context.Background(), sc)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, receipt.Status)
	assert.Equal(t, int64(3), sc.Cart.Count())
	assert.True(t, sc.CheckoutPending())

	_, err = checkout.Submit(context.Background(), sc)
	assert.ErrorIs(t, err, scope.ErrCheckoutPending)

	require.Len(t, enq.tasks, 1)
	var payload mq.SettlePaymentPayload
	require.NoError(t, jsonx.Unmarshal(enq.tasks[0].Payload(), &payload))
	assert.Equal(t, receipt.OrderID, payload.OrderId)
	assert.Equal(t, "s1", payload.SessionId)

	// added after the order was placed, must survive settlement
	sc.Cart.Add(cart.Product{ID: "late", Name: "Late", Price: 70}, 1)

	events := &recordingPublisher{}
	mux := mq.NewAsynqMux(NewSettlement(r, events).Settle)
	require.NoError(t, mux.ProcessTask(context.Background(), enq.tasks[0]))
	items := sc.Cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "late", items[0].ID)

	// redelivery is harmless
	sc.Cart.Add(cart.Product{ID: "b", Price: 1}, 1)
	require.NoError(t, mux.ProcessTask(context.Background(), enq.tasks[0]))
	assert.Equal(t, int64(2), sc.Cart.Count())
	assert.Len(t, events.events, 1)
}

func TestCheckout_EnqueueFailureReleasesOrder(t *testing.T) {
	_, sc := newScope(t)
	sc.Cart.Add(cart.Product{ID: "a", Price: 10}, 1)

	boom := errors.New("redis down")
	checkout := NewCheckout(NewAsynqGateway(time.Second, &fakeEnqueuer{err: boom}))

	_, err := checkout.Submit(context.Background(), sc)
	assert.ErrorIs(t, err, boom)
	assert.False(t, sc.CheckoutPending())
}

func TestSettlement_ExpiredScopeAndPublishFailure(t *testing.T) {
	r, sc := newScope(t)
	events := &recordingPublisher{err: errors.New("kafka down")}
	settlement := NewSettlement(r, events)

	require.NoError(t, settlement.Settle(context.Background(), mq.SettlePaymentPayload{OrderId: "o1", SessionId: "gone"}))

	sc.Cart.Add(cart.Product{ID: "a", Price: 10}, 1)
	require.NoError(t, sc.BeginCheckout("o2", sc.Cart.Items()))
	require.NoError(t, settlement.Settle(context.Background(), mq.SettlePaymentPayload{OrderId: "o2", SessionId: "s1"}))
	assert.Equal(t, int64(0), sc.Cart.Count())
	assert.Len(t, events.events, 1)
}
