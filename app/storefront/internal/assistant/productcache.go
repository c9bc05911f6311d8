package assistant

import (
	"context"
	stderrors "errors"
	"fmt"
	"sync"
	"time"

	"WalMate/app/common/consts/biz"
	"WalMate/app/common/consts/errno"
	"WalMate/app/storefront/internal/backend"
	"WalMate/app/storefront/internal/notify"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/threading"
	"github.com/zeromicro/x/errors"
)

const lookupAttempts = 2

type cacheEntry struct {
	done    chan struct{}
	product Product
}

type claim struct {
	id    string
	entry *cacheEntry
}

// productCache resolves every product id at most once. An id is claimed under the mutex
// before its lookup starts, so concurrent resolves of the same id share one fetch.
type productCache struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry
	// ids in claim order
	order   []string
	api     ProductAPI
	notices Notifier
	timeout time.Duration
}

func newProductCache(api ProductAPI, notices Notifier, timeout time.Duration) *productCache {
	return &productCache{
		entries: make(map[string]*cacheEntry),
		api:     api,
		notices: notices,
		timeout: timeout,
	}
}

// resolve starts a lookup for every id not claimed yet and returns the ids it claimed.
func (c *productCache) resolve(ids []string) []string {
	var claimed []claim

	c.mu.Lock()
	for _, id := range ids {
		if _, ok := c.entries[id]; ok {
			continue
		}
		e := &cacheEntry{done: make(chan struct{})}
		c.entries[id] = e
		c.order = append(c.order, id)
		claimed = append(claimed, claim{id: id, entry: e})
	}
	c.mu.Unlock()

	out := make([]string, 0, len(claimed))
	for _, cl := range claimed {
		id, e := cl.id, cl.entry
		out = append(out, id)
		threading.GoSafe(func() {
			c.fetch(id, e)
		})
	}
	return out
}

func (c *productCache) fetch(id string, e *cacheEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	var (
		p   *backend.Product
		err error
	)
	for attempt := 0; attempt < lookupAttempts; attempt++ {
		p, err = c.api.Product(ctx, id)
		if err == nil || ctx.Err() != nil || !retryable(err) {
			break
		}
	}

	product := unavailable(id)
	if err != nil {
		logx.Errorw("load product failed", logx.Field("productId", id), logx.Field("err", err.Error()))
		if c.notices != nil {
			c.notices.Push(notify.Error("Product Error", fmt.Sprintf("Failed to load product details for %s", id)))
		}
	} else {
		product = fromBackend(id, p)
	}

	c.mu.Lock()
	e.product = product
	close(e.done)
	c.mu.Unlock()
}

func (c *productCache) get(id string) (Product, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[id]
	if !ok {
		return Product{}, false
	}
	select {
	case <-e.done:
		return e.product, true
	default:
		return Product{}, false
	}
}

// snapshot returns the resolved products and the ids still being looked up.
func (c *productCache) snapshot() (map[string]Product, []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	resolved := make(map[string]Product, len(c.entries))
	pending := make([]string, 0)
	for _, id := range c.order {
		e := c.entries[id]
		select {
		case <-e.done:
			resolved[id] = e.product
		default:
			pending = append(pending, id)
		}
	}
	return resolved, pending
}

// wait blocks until every claimed id in ids is resolved or ctx is done. Unclaimed ids are ignored.
func (c *productCache) wait(ctx context.Context, ids []string) error {
	for _, id := range ids {
		c.mu.Lock()
		e, ok := c.entries[id]
		c.mu.Unlock()
		if !ok {
			continue
		}
		select {
		case <-e.done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// retryable reports whether another lookup could answer differently: transport failures,
// timeouts and 5xx replies are coded BackendError, a 404 is final.
func retryable(err error) bool {
	var codeMsg *errors.CodeMsg
	if stderrors.As(err, &codeMsg) {
		return codeMsg.Code == errno.BackendError
	}
	return true
}

func unavailable(id string) Product {
	return Product{
		ID:          id,
		Name:        UnavailableName,
		Description: UnavailableDesc,
		Price:       0,
		ImageURL:    biz.PlaceholderImage,
		Unavailable: true,
	}
}

func fromBackend(id string, p *backend.Product) Product {
	// 缓存键以请求的 id 为准
	out := Product{
		ID:          id,
		Name:        p.Name,
		Description: p.Description,
		Price:       int64(p.Price),
		ImageURL:    p.Image(),
		Material:    p.Material,
		Features:    p.Features,
	}
	if out.ImageURL == "" {
		out.ImageURL = biz.PlaceholderImage
	}
	return out
}
