package probe

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/NikolasTh90/healthwatcher/internal/config"
	"github.com/NikolasTh90/healthwatcher/internal/helper"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type mongoDBProbe struct {
	user     string
	password string
	hostname string
	database string
	port     string
	timeout  time.Duration
}

func NewMongoDBProbe(cfg *config.MongoDB) *mongoDBProbe {
	cfg.User = helper.ResolveEnv(cfg.User)
	cfg.Password = helper.ResolveEnv(cfg.Password)
	cfg.Hostname = helper.ResolveEnv(cfg.Hostname)
	cfg.Database = helper.ResolveEnv(cfg.Database)
	cfg.Port = helper.SetDefaultStringIfEmpty(helper.ResolveEnv(cfg.Port), "27017", "port", "mongodb")

	return &mongoDBProbe{
		user:     cfg.User,
		password: cfg.Password,
		hostname: cfg.Hostname,
		database: cfg.Database,
		port:     cfg.Port,
		timeout:  10 * time.Second,
	}
}

func (m *mongoDBProbe) Check() Result {
	u := url.URL{
		Scheme: "mongodb",
		Host:   fmt.Sprintf("%s:%s", m.hostname, m.port),
		Path:   m.database,
	}

	client, err := mongo.NewClient(options.Client().ApplyURI(u.String()))
	if err != nil {
		return Error(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()

	if err := client.Connect(ctx); err != nil {
		return Error(err)
	}
	defer func() { _ = client.Disconnect(ctx) }()

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return Error(err)
	}

	log.WithFields(log.Fields{"kind": "probe", "name": "mongodb", "status": "alive", "host": u.Host}).Debug()
	return Healthy()
}
