//go:build integration
// +build integration

package probe

import (
	"flag"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	redisHost = flag.String("redis.host", svcHost("127.0.0.1", "redis"), "Redis integration server host")
	redisPort = flag.Uint("redis.port", svcPort(16379, 6379), "Redis integration server port")
)

func TestRedisProbeCheckHealthy(t *testing.T) {
	subject := &redisProbe{
		addr: fmt.Sprintf("%s:%d", *redisHost, *redisPort),
	}

	assert.True(t, subject.Check().IsHealthy())
}

func TestRedisProbeCheckErrorOnClosedPort(t *testing.T) {
	subject := &redisProbe{
		addr: fmt.Sprintf("%s:%d", *redisHost, 1),
	}

	result := subject.Check()
	assert.Equal(t, StateError, result.State)
}
