package payment

import (
	"context"
	"errors"
	"time"

	"WalMate/app/common/snowflake"
	"WalMate/app/storefront/internal/scope"

	"github.com/zeromicro/go-zero/core/logx"
)

var ErrCartEmpty = errors.New("cart is empty")

type Receipt struct {
	OrderID string `json:"orderId"`
	Status  Status `json:"status"`
	Quote   Quote  `json:"quote"`
}

type Checkout struct {
	gateway Gateway
}

func NewCheckout(gateway Gateway) *Checkout {
	return &Checkout{gateway: gateway}
}

// Submit turns the current cart of sc into an order and hands it to the gateway.
// The ordered lines leave the cart only when the payment settles.
func (c *Checkout) Submit(ctx context.Context, sc *scope.Scope) (*Receipt, error) {
	snap := sc.Cart.Snapshot()
	if len(snap.Items) == 0 {
		return nil, ErrCartEmpty
	}

	order := Order{
		ID:        snowflake.NextString(),
		SessionID: sc.ID,
		Items:     snap.Items,
		Quote:     NewQuote(snap.TotalPrice),
		CreatedAt: time.Now(),
	}
	if err := sc.BeginCheckout(order.ID, order.Items); err != nil {
		return nil, err
	}

	status, err := c.gateway.Submit(ctx, order)
	if err != nil {
		sc.AbortCheckout(order.ID)
		logx.WithContext(ctx).Errorw("submit payment failed",
			logx.Field("orderId", order.ID), logx.Field("err", err.Error()))
		return nil, err
	}

	return &Receipt{OrderID: order.ID, Status: status, Quote: order.Quote}, nil
}
