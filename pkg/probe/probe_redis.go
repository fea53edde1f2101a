package probe

import (
	"fmt"

	"github.com/NikolasTh90/healthwatcher/internal/config"
	"github.com/NikolasTh90/healthwatcher/internal/helper"
	"github.com/go-redis/redis"
	log "github.com/sirupsen/logrus"
)

type redisProbe struct {
	addr     string
	password string
}

func NewRedisProbe(cfg *config.Redis) *redisProbe {
	cfg.Hostname = helper.ResolveEnv(cfg.Hostname)
	cfg.Port = helper.SetDefaultStringIfEmpty(helper.ResolveEnv(cfg.Port), "6379", "port", "redis")
	cfg.Password = helper.ResolveEnv(cfg.Password)

	return &redisProbe{
		addr:     fmt.Sprintf("%s:%s", cfg.Hostname, cfg.Port),
		password: cfg.Password,
	}
}

func (r *redisProbe) Check() Result {
	client := redis.NewClient(&redis.Options{
		Addr:     r.addr,
		Password: r.password,
	})
	defer client.Close()

	if _, err := client.Ping().Result(); err != nil {
		return Error(err)
	}

	log.WithFields(log.Fields{"kind": "probe", "name": "redis", "status": "alive", "host": r.addr}).Debug()
	return Healthy()
}
