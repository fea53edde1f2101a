package probe

import (
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/NikolasTh90/healthwatcher/internal/config"
	"github.com/NikolasTh90/healthwatcher/internal/helper"
	log "github.com/sirupsen/logrus"
)

const defaultHTTPTimeout = "10s"

type httpGetProbe struct {
	method  string
	scheme  string
	host    string
	path    string
	timeout time.Duration
}

func NewHTTPProbe(cfg *config.HTTPGet) (*httpGetProbe, error) {
	cfg.Method = helper.SetDefaultStringIfEmpty(helper.ResolveEnv(cfg.Method), http.MethodGet, "method", "http")
	cfg.Scheme = helper.SetDefaultStringIfEmpty(helper.ResolveEnv(cfg.Scheme), "http", "scheme", "http")
	cfg.Hostname = helper.ResolveEnv(cfg.Hostname)
	cfg.Port = helper.ResolveEnv(cfg.Port)
	cfg.Path = helper.ResolveEnv(cfg.Path)
	cfg.Timeout = helper.SetDefaultStringIfEmpty(helper.ResolveEnv(cfg.Timeout), defaultHTTPTimeout, "timeout", "http")

	host := cfg.Hostname
	if cfg.Port != "" {
		host = net.JoinHostPort(cfg.Hostname, cfg.Port)
	}

	timeout, err := time.ParseDuration(cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid timeout duration: %w", err)
	}

	return &httpGetProbe{
		method:  strings.ToUpper(cfg.Method),
		scheme:  cfg.Scheme,
		host:    host,
		path:    cfg.Path,
		timeout: timeout,
	}, nil
}

// Check issues a single request and classifies the response. A status of 200
// is healthy, any other status is unhealthy, and transport failures of any
// kind (refused connection, timeout, DNS) are errors.
func (h *httpGetProbe) Check() Result {
	u := url.URL{
		Scheme: h.scheme,
		Host:   h.host,
		Path:   h.path,
	}

	client := &http.Client{
		Timeout: h.timeout,
	}

	req, err := http.NewRequest(h.method, u.String(), nil)
	if err != nil {
		return Error(err)
	}

	res, err := client.Do(req)
	if err != nil {
		return Error(err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return Unhealthy(res.StatusCode)
	}

	log.WithFields(log.Fields{"kind": "probe", "name": "http", "status": "alive", "host": u.String()}).Debug()
	return Healthy()
}
