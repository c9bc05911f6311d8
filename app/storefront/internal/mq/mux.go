package mq

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/zeromicro/go-zero/core/jsonx"
	"github.com/zeromicro/go-zero/core/logx"
)

// SettleFunc settles one submitted payment.
type SettleFunc func(ctx context.Context, payload SettlePaymentPayload) error

func NewAsynqMux(settle SettleFunc) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskSettlePayment, newSettlePaymentHandler(settle))
	return mux
}

func NewSettlePaymentTask(payload SettlePaymentPayload) (*asynq.Task, error) {
	body, err := jsonx.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskSettlePayment, body), nil
}

func newSettlePaymentHandler(settle SettleFunc) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload SettlePaymentPayload
		if err := jsonx.Unmarshal(t.Payload(), &payload); err != nil {
			// 无法解析的任务重试也没有意义
			return fmt.Errorf("decode %s payload: %v: %w", TaskSettlePayment, err, asynq.SkipRetry)
		}
		if err := settle(ctx, payload); err != nil {
			logx.WithContext(ctx).Errorw("settle payment failed",
				logx.Field("orderId", payload.OrderId), logx.Field("err", err.Error()))
			return err
		}
		return nil
	}
}
