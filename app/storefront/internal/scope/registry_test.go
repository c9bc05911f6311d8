package scope

import (
	"context"
	"sync"
	"testing"

	"WalMate/app/storefront/internal/backend"
	"WalMate/app/storefront/internal/cart"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBackend struct{}

func (stubBackend) Chat(context.Context, string, backend.ChatReq) (*backend.ChatResp, error) {
	return &backend.ChatResp{Answer: "hi"}, nil
}

func (stubBackend) ChatHistory(context.Context, string, string) ([]backend.HistoryItem, error) {
	return nil, nil
}

func (stubBackend) Product(_ context.Context, id string) (*backend.Product, error) {
	return &backend.Product{ID: backend.FlexString(id), Name: id}, nil
}

func (stubBackend) Login(context.Context, backend.LoginReq) (*backend.LoginResp, error) {
	return &backend.LoginResp{AccessToken: "tok"}, nil
}

func (stubBackend) Register(context.Context, backend.RegisterReq) (*backend.RegisterResp, error) {
	return &backend.RegisterResp{Message: "ok"}, nil
}

func newRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := NewRegistry(Conf{}, stubBackend{}, nil)
	require.NoError(t, err)
	return r
}

func TestRegistry_GetCreatesOncePerID(t *testing.T) {
	r := newRegistry(t)

	var wg sync.WaitGroup
	got := make([]*Scope, 16)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s, err := r.Get("s1")
			assert.NoError(t, err)
			got[i] = s
		}(i)
	}
	wg.Wait()

	for _, s := range got {
		assert.Same(t, got[0], s)
	}

	other, err := r.Get("s2")
	require.NoError(t, err)
	assert.NotSame(t, got[0], other)

	_, err = r.Get("")
	assert.ErrorIs(t, err, ErrEmptyID)
}

func TestRegistry_ScopesAreIsolated(t *testing.T) {
	r := newRegistry(t)
	a, _ := r.Get("a")
	b, _ := r.Get("b")

	a.Cart.Add(cart.Product{ID: "p1", Price: 10}, 1)
	require.NoError(t, a.Account.Login(context.Background(), "asha", "pw"))

	assert.Equal(t, int64(0), b.Cart.Count())
	assert.False(t, b.Account.LoggedIn())
	assert.True(t, a.Account.LoggedIn())
}

func TestRegistry_LookupAndClose(t *testing.T) {
	r := newRegistry(t)

	_, ok := r.Lookup("s1")
	assert.False(t, ok)

	s, err := r.Get("s1")
	require.NoError(t, err)
	found, ok := r.Lookup("s1")
	require.True(t, ok)
	assert.Same(t, s, found)

	r.Close("s1")
	_, ok = r.Lookup("s1")
	assert.False(t, ok)

	fresh, err := r.Get("s1")
	require.NoError(t, err)
	assert.NotSame(t, s, fresh)
}

func TestScope_AccountEventsBecomeNotices(t *testing.T) {
	r := newRegistry(t)
	s, _ := r.Get("s1")

	require.NoError(t, s.Account.Login(context.Background(), "asha", "pw"))
	require.NoError(t, s.Account.Logout(context.Background()))

	notices := s.Notices.Drain()
	require.Len(t, notices, 2)
	assert.Equal(t, "Login Successful", notices[0].Title)
	assert.Equal(t, "Logged out", notices[1].Title)
}

func TestScope_SettleCheckoutDeductsOrderOnce(t *testing.T) {
	r := newRegistry(t)
	s, _ := r.Get("s1")
	s.Cart.Add(cart.Product{ID: "p1", Price: 1000}, 2)

	require.NoError(t, s.BeginCheckout("o1", s.Cart.Items()))
	assert.ErrorIs(t, s.BeginCheckout("o2", nil), ErrCheckoutPending)
	assert.True(t, s.CheckoutPending())

	// the shopper keeps shopping while the payment is pending
	s.Cart.Add(cart.Product{ID: "p1", Price: 1000}, 1)
	s.Cart.Add(cart.Product{ID: "p2", Price: 5}, 1)

	assert.False(t, s.SettleCheckout("unknown"))
	assert.Equal(t, int64(4), s.Cart.Count())

	assert.True(t, s.SettleCheckout("o1"))
	items := s.Cart.Items()
	require.Len(t, items, 2)
	assert.Equal(t, cart.LineItem{ID: "p1", Price: 1000, Quantity: 1}, items[0])
	assert.Equal(t, "p2", items[1].ID)

	// a redelivered settlement must not touch the cart again
	assert.False(t, s.SettleCheckout("o1"))
	assert.Equal(t, int64(2), s.Cart.Count())
	assert.False(t, s.CheckoutPending())
}

func TestScope_AbortCheckout(t *testing.T) {
	r := newRegistry(t)
	s, _ := r.Get("s1")

	require.NoError(t, s.BeginCheckout("o1", nil))
	s.AbortCheckout("o1")
	assert.False(t, s.CheckoutPending())
	require.NoError(t, s.BeginCheckout("o2", nil))
}
