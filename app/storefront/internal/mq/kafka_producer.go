package mq

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/zeromicro/go-zero/core/jsonx"
)

type KafkaConf struct {
	Broker     []string `json:",optional"`
	OrderTopic string   `json:",default=walmate-orders"`
}

// OrderProducer publishes order events. A producer without brokers drops every event.
type OrderProducer struct {
	w *kafka.Writer
}

func NewOrderProducer(c KafkaConf) *OrderProducer {
	if len(c.Broker) == 0 || c.OrderTopic == "" {
		return &OrderProducer{}
	}
	return &OrderProducer{w: &kafka.Writer{
		Addr:         kafka.TCP(c.Broker...),
		Topic:        c.OrderTopic,
		RequiredAcks: kafka.RequireOne,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
	}}
}

func (p *OrderProducer) Enabled() bool {
	return p != nil && p.w != nil
}

// PublishOrderPlaced sends the event keyed by order id, so events of one order stay ordered.
func (p *OrderProducer) PublishOrderPlaced(ctx context.Context, evt OrderPlacedEvent) error {
	if !p.Enabled() {
		return nil
	}
	body, err := jsonx.Marshal(evt)
	if err != nil {
		return err
	}
	return p.w.WriteMessages(ctx, kafka.Message{Key: []byte(evt.OrderId), Value: body})
}

func (p *OrderProducer) Close() error {
	if !p.Enabled() {
		return nil
	}
	return p.w.Close()
}
