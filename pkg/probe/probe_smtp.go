package probe

import (
	"net"
	"net/smtp"

	"github.com/NikolasTh90/healthwatcher/internal/config"
	"github.com/NikolasTh90/healthwatcher/internal/helper"
	log "github.com/sirupsen/logrus"
)

type smtpProbe struct {
	addr string
}

func NewSMTPProbe(cfg *config.SMTP) *smtpProbe {
	cfg.Hostname = helper.ResolveEnv(cfg.Hostname)
	cfg.Port = helper.SetDefaultStringIfEmpty(helper.ResolveEnv(cfg.Port), "25", "port", "smtp")

	return &smtpProbe{
		addr: net.JoinHostPort(cfg.Hostname, cfg.Port),
	}
}

func (s *smtpProbe) Check() Result {
	client, err := smtp.Dial(s.addr)
	if err != nil {
		return Error(err)
	}
	defer client.Close()

	if err := client.Noop(); err != nil {
		return Error(err)
	}

	if err := client.Quit(); err != nil {
		return Error(err)
	}

	log.WithFields(log.Fields{"kind": "probe", "name": "smtp", "status": "alive", "host": s.addr}).Debug()
	return Healthy()
}
