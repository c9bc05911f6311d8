package bootstrap

import (
	"WalMate/app/storefront/internal/mq"
	"WalMate/app/storefront/internal/svc"

	"github.com/hibiken/asynq"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/threading"
)

// StartAsynq runs the settlement worker when payments go through asynq; returns a stop func.
func StartAsynq(sc *svc.ServiceContext) func() {
	if sc.AsynqClient == nil {
		return func() {}
	}

	queues := sc.Config.AsynqServerConf.Queues
	if len(queues) == 0 {
		queues = map[string]int{mq.QueuePayment: 1}
	}
	srv := asynq.NewServer(asynq.RedisClientOpt{Addr: sc.AsynqAddr()}, asynq.Config{
		Concurrency: sc.Config.AsynqServerConf.Concurrency,
		Queues:      queues,
	})
	mux := mq.NewAsynqMux(sc.Settlement.Settle)
	threading.GoSafe(func() {
		if err := srv.Run(mux); err != nil {
			logx.Errorw("asynq server stopped", logx.Field("err", err.Error()))
		}
	})
	return func() {
		srv.Shutdown()
	}
}
