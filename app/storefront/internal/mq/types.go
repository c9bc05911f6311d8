package mq

import "time"

// Asynq task type for delayed payment settlement
const TaskSettlePayment = "payment:settle"

const QueuePayment = "payment"

// SettlePaymentPayload is enqueued when a checkout is submitted and handled once the
// simulated payment delay has passed.
type SettlePaymentPayload struct {
	OrderId   string      `json:"order_id"`
	SessionId string      `json:"session_id"`
	Subtotal  int64       `json:"subtotal"`
	Shipping  int64       `json:"shipping"`
	Tax       int64       `json:"tax"`
	Total     int64       `json:"total"`
	Items     []OrderItem `json:"items"`
}

type OrderItem struct {
	ProductId string `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
}

// OrderPlacedEvent is published to Kafka after a checkout settled.
type OrderPlacedEvent struct {
	OrderId   string      `json:"order_id"`
	SessionId string      `json:"session_id"`
	Username  string      `json:"username,omitempty"`
	Items     []OrderItem `json:"items"`
	Subtotal  int64       `json:"subtotal"`
	Shipping  int64       `json:"shipping"`
	Tax       int64       `json:"tax"`
	Total     int64       `json:"total"`
	PlacedAt  time.Time   `json:"placed_at"`
}
