// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package svc

import (
	"context"

	"WalMate/app/common/middleware"
	"WalMate/app/common/snowflake"
	"WalMate/app/storefront/internal/account"
	"WalMate/app/storefront/internal/backend"
	"WalMate/app/storefront/internal/catalog"
	"WalMate/app/storefront/internal/config"
	"WalMate/app/storefront/internal/mq"
	"WalMate/app/storefront/internal/payment"
	"WalMate/app/storefront/internal/scope"
	"WalMate/app/storefront/internal/suggest"

	"github.com/hibiken/asynq"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/rest"
)

type ServiceContext struct {
	Config config.Config

	SessionMiddleware rest.Middleware

	Backend    *backend.Client
	Scopes     *scope.Registry
	Catalog    *catalog.Catalog
	Checkout   *payment.Checkout
	Settlement *payment.Settlement
	Orders     *mq.OrderProducer
	Suggester  *suggest.Suggester

	AsynqClient *asynq.Client
}

func NewServiceContext(c config.Config) *ServiceContext {
	logx.MustSetup(c.LogConf)

	if c.SnowflakeNode > 0 {
		if err := snowflake.SetNodeID(c.SnowflakeNode); err != nil {
			logx.Errorf("failed to set snowflake node id: %v", err)
		}
	}

	client := backend.NewClient(c.Backend)

	var tokens account.TokenStorage = account.NewMemoryStorage()
	if c.RedisConf.Host != "" {
		rds := redis.MustNewRedis(c.RedisConf)
		tokens = account.NewRedisStorage(rds, int(c.Scope.IdleTimeout.Seconds()))
	}

	scopes, err := scope.NewRegistry(c.Scope, client, tokens)
	logx.Must(err)
	products, err := catalog.New(client, c.CatalogTTL)
	logx.Must(err)

	orders := mq.NewOrderProducer(c.KafkaConf)
	settlement := payment.NewSettlement(scopes, orders)
	// 只认本进程签发且仍存活的会话
	sessions := middleware.NewSessionMiddleware(c.Scope.IdleTimeout, func(id string) bool {
		_, ok := scopes.Lookup(id)
		return ok
	})

	sc := &ServiceContext{
		Config:            c,
		SessionMiddleware: sessions.Handle,
		Backend:           client,
		Scopes:            scopes,
		Catalog:           products,
		Settlement:        settlement,
		Orders:            orders,
		Suggester:         suggest.NewArkSuggester(context.Background(), c.ChatModel),
	}

	var gateway payment.Gateway
	switch c.Payment.Gateway {
	case "asynq":
		sc.AsynqClient = asynq.NewClient(asynq.RedisClientOpt{Addr: sc.AsynqAddr()})
		gateway = payment.NewAsynqGateway(c.Payment.Delay, sc.AsynqClient)
	default:
		gateway = payment.NewInlineGateway(c.Payment.Delay, settlement)
	}
	sc.Checkout = payment.NewCheckout(gateway)

	return sc
}

// AsynqAddr falls back to the token redis when no dedicated asynq redis is set.
func (sc *ServiceContext) AsynqAddr() string {
	if sc.Config.AsynqConf.Addr != "" {
		return sc.Config.AsynqConf.Addr
	}
	return sc.Config.RedisConf.Host
}

func (sc *ServiceContext) Close() {
	if sc.AsynqClient != nil {
		if err := sc.AsynqClient.Close(); err != nil {
			logx.Errorw("close asynq client failed", logx.Field("err", err.Error()))
		}
	}
	if err := sc.Orders.Close(); err != nil {
		logx.Errorw("close kafka writer failed", logx.Field("err", err.Error()))
	}
}
