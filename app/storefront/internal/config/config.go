// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package config

import (
	"time"

	"WalMate/app/storefront/internal/backend"
	"WalMate/app/storefront/internal/mq"
	"WalMate/app/storefront/internal/scope"
	"WalMate/app/storefront/internal/suggest"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/rest"
	"github.com/zeromicro/zero-contrib/zrpc/registry/consul"
)

type Config struct {
	rest.RestConf

	Backend backend.Conf
	Scope   scope.Conf

	// 目录缓存, 进程内共享
	CatalogTTL time.Duration `json:",default=5m"`

	// token 存储; 未配置 Host 时使用内存
	RedisConf redis.RedisConf `json:",optional"`

	Payment PaymentConf

	AsynqConf       AsynqRedisConf  `json:",optional"`
	AsynqServerConf AsynqServerConf `json:",optional"`

	KafkaConf mq.KafkaConf `json:",optional"`

	ChatModel suggest.ModelConf `json:",optional"`

	Consul consul.Conf `json:",optional"`

	LogConf logx.LogConf

	SnowflakeNode int64 `json:",optional"`
}

type PaymentConf struct {
	// inline settles within the checkout request, asynq via a delayed task
	Gateway string        `json:",default=inline,options=inline|asynq"`
	Delay   time.Duration `json:",default=2s"`
}

// Minimal redis client config for Asynq
type AsynqRedisConf struct {
	Addr string `json:",optional"`
}

type AsynqServerConf struct {
	Concurrency int            `json:",default=10"`
	Queues      map[string]int `json:",optional"`
}
