package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/NikolasTh90/healthwatcher/internal/helper"
	"github.com/hashicorp/hcl"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	// DefaultInterval is used when neither HEALTH_CHECK_INTERVAL nor a
	// watch block configures one.
	DefaultInterval = 60 * time.Second

	intervalEnvVar = "HEALTH_CHECK_INTERVAL"
)

// GenerateFromConfigDir reads all .hcl files below configDir and merges them
// into the receiver. A missing or empty directory is not an error; the caller
// is expected to fall back to the built-in targets via ApplyDefaults.
func (c *Config) GenerateFromConfigDir(configDir string) error {
	configDir = strings.TrimRight(configDir, "/")

	matches, err := findInPath(configDir)
	if err != nil {
		return err
	}

	for _, m := range matches {
		log.Infof("found config file: %s", m)

		contents, err := os.ReadFile(m)
		if err != nil {
			return errors.Wrapf(err, "failed to read config file %s", m)
		}

		if err := hcl.Unmarshal(contents, c); err != nil {
			return errors.Wrapf(err, "could not parse configuration file %s", m)
		}
	}

	return nil
}

// ApplyDefaults installs the built-in Django application targets when no
// target was configured, so the watcher is runnable without any config files.
func (c *Config) ApplyDefaults() {
	if len(c.Targets) > 0 {
		return
	}

	log.Info("no targets configured, falling back to built-in Django app targets")
	c.Targets = DefaultTargets()
}

func DefaultTargets() []Target {
	return []Target{
		{
			Name: "Jopi",
			HTTP: &HTTPGet{
				Scheme: "http",
				Host:   Host{Hostname: "jopi_app", Port: "8000"},
				Path:   "/health/",
			},
		},
		{
			Name: "Synergas",
			HTTP: &HTTPGet{
				Scheme: "http",
				Host:   Host{Hostname: "synergas_app", Port: "8000"},
				Path:   "/health/",
			},
		},
	}
}

// CheckInterval resolves the pause between iterations. The
// HEALTH_CHECK_INTERVAL environment variable (integer seconds) takes
// precedence over the watch block; both are read once at startup.
func (c *Config) CheckInterval() (time.Duration, error) {
	if v := os.Getenv(intervalEnvVar); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil {
			return 0, errors.Wrapf(err, "invalid %s value %q", intervalEnvVar, v)
		}
		if secs <= 0 {
			return 0, fmt.Errorf("%s must be a positive number of seconds, got %d", intervalEnvVar, secs)
		}
		return time.Duration(secs) * time.Second, nil
	}

	if c.Watch != nil && c.Watch.Interval != "" {
		interval, err := time.ParseDuration(helper.ResolveEnv(c.Watch.Interval))
		if err != nil {
			return 0, errors.Wrapf(err, "invalid watch interval %q", c.Watch.Interval)
		}
		if interval <= 0 {
			return 0, fmt.Errorf("watch interval must be positive, got %s", interval)
		}
		return interval, nil
	}

	return DefaultInterval, nil
}
