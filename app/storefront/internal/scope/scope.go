package scope

import (
	"sync"

	"WalMate/app/storefront/internal/account"
	"WalMate/app/storefront/internal/assistant"
	"WalMate/app/storefront/internal/cart"
	"WalMate/app/storefront/internal/notify"

	"github.com/zeromicro/go-zero/core/logx"
)

// Scope is everything one shopper owns for the lifetime of a browser session.
type Scope struct {
	ID        string
	Cart      *cart.Store
	Assistant *assistant.Session
	Account   *account.Store
	Notices   *notify.Queue

	mu      sync.Mutex
	// pending orders and the lines they were placed for
	pending map[string][]cart.LineItem
	cancel  func()
}

func (s *Scope) watchAccount() {
	s.cancel = s.Account.Subscribe(func(e account.Event) {
		if e.LoggedIn {
			logx.Infow("shopper logged in", logx.Field("session", s.ID), logx.Field("username", e.Username))
			s.Notices.Push(notify.Info("Login Successful", "Welcome back!"))
			return
		}
		logx.Infow("shopper logged out", logx.Field("session", s.ID))
		s.Notices.Push(notify.Info("Logged out", "See you soon!"))
	})
}

// BeginCheckout registers orderID, placed for lines, as awaiting settlement. Only one order may
// be pending at a time.
func (s *Scope) BeginCheckout(orderID string, lines []cart.LineItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.pending) > 0 {
		return ErrCheckoutPending
	}
	s.pending[orderID] = lines
	return nil
}

// AbortCheckout forgets a pending order whose payment could not be submitted.
func (s *Scope) AbortCheckout(orderID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, orderID)
}

// SettleCheckout takes the ordered lines out of the cart; anything added while the payment
// was pending stays. It reports false when the order is unknown or was settled before, so
// redelivered settlements are harmless.
func (s *Scope) SettleCheckout(orderID string) bool {
	s.mu.Lock()
	lines, ok := s.pending[orderID]
	if !ok {
		s.mu.Unlock()
		return false
	}
	delete(s.pending, orderID)
	s.mu.Unlock()

	s.Cart.Deduct(lines)
	return true
}

func (s *Scope) CheckoutPending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending) > 0
}

func (s *Scope) close() {
	if s.cancel != nil {
		s.cancel()
	}
}
