package probe

import (
	"database/sql"
	"net"

	"github.com/NikolasTh90/healthwatcher/internal/config"
	"github.com/NikolasTh90/healthwatcher/internal/helper"
	"github.com/go-sql-driver/mysql"
	log "github.com/sirupsen/logrus"
)

type mySQLProbe struct {
	dsn  string
	addr string
}

func NewMySQLProbe(cfg *config.MySQL) *mySQLProbe {
	cfg.User = helper.ResolveEnv(cfg.User)
	cfg.Password = helper.ResolveEnv(cfg.Password)
	cfg.Hostname = helper.ResolveEnv(cfg.Hostname)
	cfg.Port = helper.SetDefaultStringIfEmpty(helper.ResolveEnv(cfg.Port), "3306", "port", "mysql")
	cfg.Database = helper.ResolveEnv(cfg.Database)

	addr := net.JoinHostPort(cfg.Hostname, cfg.Port)

	connCfg := mysql.Config{
		User:   cfg.User,
		Passwd: cfg.Password,
		Net:    "tcp",
		Addr:   addr,
		DBName: cfg.Database,
	}

	return &mySQLProbe{
		dsn:  connCfg.FormatDSN(),
		addr: addr,
	}
}

func (m *mySQLProbe) Check() Result {
	db, err := sql.Open("mysql", m.dsn)
	if err != nil {
		return Error(err)
	}
	defer db.Close()

	rows, err := db.Query("SELECT 1")
	if err != nil {
		return Error(err)
	}
	rows.Close()

	log.WithFields(log.Fields{"kind": "probe", "name": "mysql", "status": "alive", "host": m.addr}).Debug()
	return Healthy()
}
