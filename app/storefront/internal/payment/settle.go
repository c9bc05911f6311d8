package payment

import (
	"context"
	"time"

	"WalMate/app/storefront/internal/mq"
	"WalMate/app/storefront/internal/notify"
	"WalMate/app/storefront/internal/scope"

	"github.com/zeromicro/go-zero/core/logx"
)

type ScopeFinder interface {
	Lookup(id string) (*scope.Scope, bool)
}

type EventPublisher interface {
	PublishOrderPlaced(ctx context.Context, evt mq.OrderPlacedEvent) error
}

// Settlement finishes a paid order: the ordered lines leave the cart once, a notice is queued
// and the order placed event goes out.
type Settlement struct {
	scopes ScopeFinder
	events EventPublisher
}

func NewSettlement(scopes ScopeFinder, events EventPublisher) *Settlement {
	return &Settlement{scopes: scopes, events: events}
}

func (s *Settlement) Settle(ctx context.Context, p mq.SettlePaymentPayload) error {
	sc, ok := s.scopes.Lookup(p.SessionId)
	if !ok {
		// 会话已过期, 购物车随之释放
		logx.WithContext(ctx).Infow("settle payment for expired scope",
			logx.Field("orderId", p.OrderId), logx.Field("session", p.SessionId))
		return nil
	}
	if !sc.SettleCheckout(p.OrderId) {
		logx.WithContext(ctx).Infow("payment already settled", logx.Field("orderId", p.OrderId))
		return nil
	}

	sc.Notices.Push(notify.Info("Payment Successful!", "Your order has been placed successfully."))

	if s.events == nil {
		return nil
	}
	evt := mq.OrderPlacedEvent{
		OrderId:   p.OrderId,
		SessionId: p.SessionId,
		Username:  sc.Account.Username(),
		Items:     p.Items,
		Subtotal:  p.Subtotal,
		Shipping:  p.Shipping,
		Tax:       p.Tax,
		Total:     p.Total,
		PlacedAt:  time.Now(),
	}
	if err := s.events.PublishOrderPlaced(ctx, evt); err != nil {
		// the order stays settled
		logx.WithContext(ctx).Errorw("publish order placed event failed",
			logx.Field("orderId", p.OrderId), logx.Field("err", err.Error()))
	}
	return nil
}
