package helper

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// ResolveEnv substitutes values of the form "ENV:NAME" with the value of the
// environment variable NAME. Any other value is returned unchanged.
func ResolveEnv(in string) string {
	if strings.HasPrefix(in, "ENV:") {
		return os.Getenv(in[4:])
	}
	return in
}

func SetDefaultStringIfEmpty(value, defaultValue, field, kind string) string {
	if len(value) == 0 {
		log.Infof("no %s specified for %s target, assuming default %q", field, kind, defaultValue)
		return defaultValue
	}
	return value
}
