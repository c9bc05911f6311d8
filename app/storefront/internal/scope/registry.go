package scope

import (
	"errors"
	"time"

	"WalMate/app/storefront/internal/account"
	"WalMate/app/storefront/internal/assistant"
	"WalMate/app/storefront/internal/cart"
	"WalMate/app/storefront/internal/notify"

	"github.com/zeromicro/go-zero/core/collection"
)

var (
	ErrEmptyID         = errors.New("empty shopper scope id")
	ErrCheckoutPending = errors.New("a checkout is already being processed")
)

// Backend is the remote API every scope talks to.
type Backend interface {
	assistant.ChatAPI
	assistant.ProductAPI
	account.Authenticator
}

type Conf struct {
	Assistant      assistant.Conf
	IdleTimeout    time.Duration `json:",default=24h"`
	Limit          int           `json:",default=10000"`
	NoticeCapacity int           `json:",default=32"`
}

// Registry creates shopper scopes on first use and drops them after IdleTimeout without requests.
type Registry struct {
	c       Conf
	backend Backend
	tokens  account.TokenStorage
	cache   *collection.Cache
}

func NewRegistry(c Conf, backend Backend, tokens account.TokenStorage) (*Registry, error) {
	if c.IdleTimeout <= 0 {
		c.IdleTimeout = 24 * time.Hour
	}
	opts := []collection.CacheOption{collection.WithName("shopper-scopes")}
	if c.Limit > 0 {
		opts = append(opts, collection.WithLimit(c.Limit))
	}
	cache, err := collection.NewCache(c.IdleTimeout, opts...)
	if err != nil {
		return nil, err
	}
	if tokens == nil {
		tokens = account.NewMemoryStorage()
	}

	return &Registry{
		c:       c,
		backend: backend,
		tokens:  tokens,
		cache:   cache,
	}, nil
}

// Get returns the scope of id, creating it on the first call. Every call restarts the idle timer.
func (r *Registry) Get(id string) (*Scope, error) {
	if id == "" {
		return nil, ErrEmptyID
	}

	val, err := r.cache.Take(id, func() (any, error) {
		return r.newScope(id), nil
	})
	if err != nil {
		return nil, err
	}
	s := val.(*Scope)
	r.cache.Set(id, s)
	return s, nil
}

// Lookup returns an existing scope without creating one.
func (r *Registry) Lookup(id string) (*Scope, bool) {
	val, ok := r.cache.Get(id)
	if !ok {
		return nil, false
	}
	return val.(*Scope), true
}

func (r *Registry) Close(id string) {
	if s, ok := r.Lookup(id); ok {
		s.close()
	}
	r.cache.Del(id)
}

func (r *Registry) newScope(id string) *Scope {
	notices := notify.NewQueue(r.c.NoticeCapacity)
	shoppingCart := cart.NewStore()
	acct := account.NewStore(id, r.backend, r.tokens)

	s := &Scope{
		ID:      id,
		Cart:    shoppingCart,
		Account: acct,
		Notices: notices,
		pending: make(map[string][]cart.LineItem),
		Assistant: assistant.NewSession(r.c.Assistant, assistant.Deps{
			Chat:     r.backend,
			Products: r.backend,
			Tokens:   acct,
			Notices:  notices,
			Cart:     shoppingCart,
		}),
	}
	s.watchAccount()
	return s
}
