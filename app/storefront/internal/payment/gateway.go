package payment

import (
	"context"
	"time"

	"WalMate/app/storefront/internal/cart"
	"WalMate/app/storefront/internal/mq"

	"github.com/hibiken/asynq"
	"github.com/zeromicro/go-zero/core/logx"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

type Order struct {
	ID        string
	SessionID string
	Items     []cart.LineItem
	Quote     Quote
	CreatedAt time.Time
}

// Gateway takes a submitted order through the simulated payment.
type Gateway interface {
	Submit(ctx context.Context, o Order) (Status, error)
}

type Settler interface {
	Settle(ctx context.Context, p mq.SettlePaymentPayload) error
}

// InlineGateway waits the simulated processing time and settles within the request.
type InlineGateway struct {
	delay   time.Duration
	settler Settler
}

func NewInlineGateway(delay time.Duration, settler Settler) *InlineGateway {
	return &InlineGateway{delay: delay, settler: settler}
}

func (g *InlineGateway) Submit(ctx context.Context, o Order) (Status, error) {
	if g.delay > 0 {
		timer := time.NewTimer(g.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return StatusPending, ctx.Err()
		}
	}
	if err := g.settler.Settle(ctx, PayloadOf(o)); err != nil {
		return StatusPending, err
	}
	return StatusPaid, nil
}

type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// AsynqGateway schedules settlement as a delayed task; the order stays pending until the worker runs.
type AsynqGateway struct {
	delay  time.Duration
	client Enqueuer
}

func NewAsynqGateway(delay time.Duration, client Enqueuer) *AsynqGateway {
	return &AsynqGateway{delay: delay, client: client}
}

func (g *AsynqGateway) Submit(ctx context.Context, o Order) (Status, error) {
	task, err := mq.NewSettlePaymentTask(PayloadOf(o))
	if err != nil {
		return StatusPending, err
	}
	info, err := g.client.EnqueueContext(ctx, task, asynq.ProcessIn(g.delay), asynq.Queue(mq.QueuePayment))
	if err != nil {
		return StatusPending, err
	}
	logx.WithContext(ctx).Infow("payment settlement scheduled",
		logx.Field("orderId", o.ID), logx.Field("taskId", info.ID), logx.Field("delay", g.delay.String()))
	return StatusPending, nil
}

func PayloadOf(o Order) mq.SettlePaymentPayload {
	items := make([]mq.OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, mq.OrderItem{ProductId: it.ID, Name: it.Name, Price: it.Price, Quantity: it.Quantity})
	}
	return mq.SettlePaymentPayload{
		OrderId:   o.ID,
		SessionId: o.SessionID,
		Subtotal:  o.Quote.Subtotal,
		Shipping:  o.Quote.Shipping,
		Tax:       o.Quote.Tax,
		Total:     o.Quote.Total,
		Items:     items,
	}
}
