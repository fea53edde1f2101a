package probe

import (
	"fmt"

	"github.com/NikolasTh90/healthwatcher/internal/config"
)

// FromConfig builds the probe for a single target definition. Exactly one
// probe kind must be configured per target.
func FromConfig(target *config.Target) (Probe, error) {
	switch {
	case target.Filesystem != "":
		return &filesystemProbe{target.Filesystem}, nil
	case target.HTTP != nil:
		return NewHTTPProbe(target.HTTP)
	case target.Redis != nil:
		return NewRedisProbe(target.Redis), nil
	case target.MySQL != nil:
		return NewMySQLProbe(target.MySQL), nil
	case target.MongoDB != nil:
		return NewMongoDBProbe(target.MongoDB), nil
	case target.Amqp != nil:
		return NewAmqpProbe(target.Amqp), nil
	case target.SMTP != nil:
		return NewSMTPProbe(target.SMTP), nil
	}

	return nil, fmt.Errorf("target %q has no probe configured", target.Name)
}
