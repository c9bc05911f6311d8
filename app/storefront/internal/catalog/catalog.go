package catalog

import (
	"context"
	"time"

	"WalMate/app/common/consts/biz"
	"WalMate/app/storefront/internal/backend"

	"github.com/zeromicro/go-zero/core/collection"
)

const (
	listKey       = "products"
	productPrefix = "product:"
	fetchTimeout  = 10 * time.Second
)

type Source interface {
	Products(ctx context.Context) ([]backend.Product, error)
	Product(ctx context.Context, id string) (*backend.Product, error)
}

type Item struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int64    `json:"price"`
	ImageURL    string   `json:"imageUrl"`
	Category    string   `json:"category,omitempty"`
	Material    string   `json:"material,omitempty"`
	Features    []string `json:"features,omitempty"`
}

// Catalog serves product browsing from a process-wide cache in front of the backend.
// Concurrent misses of one key share a single backend call, which is detached from the
// request that triggered it so one disconnecting client does not fail the others.
type Catalog struct {
	src   Source
	cache *collection.Cache
}

func New(src Source, ttl time.Duration) (*Catalog, error) {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	cache, err := collection.NewCache(ttl, collection.WithName("catalog"), collection.WithLimit(4096))
	if err != nil {
		return nil, err
	}
	return &Catalog{src: src, cache: cache}, nil
}

func (c *Catalog) List(ctx context.Context) ([]Item, error) {
	val, err := c.cache.Take(listKey, func() (any, error) {
		fetchCtx, cancel := detach(ctx)
		defer cancel()
		products, err := c.src.Products(fetchCtx)
		if err != nil {
			return nil, err
		}
		items := make([]Item, 0, len(products))
		for i := range products {
			items = append(items, toItem(&products[i]))
		}
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return val.([]Item), nil
}

func (c *Catalog) Get(ctx context.Context, id string) (Item, error) {
	val, err := c.cache.Take(productPrefix+id, func() (any, error) {
		fetchCtx, cancel := detach(ctx)
		defer cancel()
		p, err := c.src.Product(fetchCtx, id)
		if err != nil {
			return nil, err
		}
		return toItem(p), nil
	})
	if err != nil {
		return Item{}, err
	}
	return val.(Item), nil
}

func detach(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), fetchTimeout)
}

func toItem(p *backend.Product) Item {
	item := Item{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Price:       int64(p.Price),
		ImageURL:    p.Image(),
		Category:    p.Category,
		Material:    p.Material,
		Features:    p.Features,
	}
	if item.ImageURL == "" {
		item.ImageURL = biz.PlaceholderImage
	}
	return item
}
