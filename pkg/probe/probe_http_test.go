package probe

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/NikolasTh90/healthwatcher/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSubject(t *testing.T, serverURL string) *httpGetProbe {
	t.Helper()

	u, err := url.Parse(serverURL)
	require.NoError(t, err)

	subject, err := NewHTTPProbe(&config.HTTPGet{
		Scheme: u.Scheme,
		Host:   config.Host{Hostname: u.Hostname(), Port: u.Port()},
		Path:   "/health/",
	})
	require.NoError(t, err)

	return subject
}

func TestHTTPProbeClassifiesOKAsHealthy(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health/", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	result := newTestSubject(t, server.URL).Check()

	assert.True(t, result.IsHealthy())
	assert.Equal(t, StateHealthy, result.State)
}

func TestHTTPProbeClassifiesNonOKStatusAsUnhealthy(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	result := newTestSubject(t, server.URL).Check()

	assert.False(t, result.IsHealthy())
	assert.Equal(t, StateUnhealthy, result.State)
	assert.Equal(t, http.StatusServiceUnavailable, result.StatusCode)
}

func TestHTTPProbeTreatsRedirectTargetStatusOnly(t *testing.T) {
	// The default client follows redirects, so the final status decides.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health/" {
			http.Redirect(w, r, "/ok", http.StatusFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	result := newTestSubject(t, server.URL).Check()

	assert.True(t, result.IsHealthy())
}

func TestHTTPProbeClassifiesConnectionRefusedAsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	result := newTestSubject(t, server.URL).Check()

	assert.Equal(t, StateError, result.State)
	assert.NotEmpty(t, result.Message)
}

func TestHTTPProbeClassifiesTimeoutAsError(t *testing.T) {
	block := make(chan struct{})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer server.Close()
	defer close(block)

	subject := newTestSubject(t, server.URL)
	subject.timeout = 50 * time.Millisecond

	result := subject.Check()

	assert.Equal(t, StateError, result.State)
}

func TestHTTPProbeDefaults(t *testing.T) {
	cfg := &config.HTTPGet{Host: config.Host{Hostname: "jopi_app", Port: "8000"}, Path: "/health/"}

	subject, err := NewHTTPProbe(cfg)
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, subject.method)
	assert.Equal(t, "http", subject.scheme)
	assert.Equal(t, "jopi_app:8000", subject.host)
	assert.Equal(t, 10*time.Second, subject.timeout)
}

func TestHTTPProbeRejectsInvalidTimeout(t *testing.T) {
	_, err := NewHTTPProbe(&config.HTTPGet{
		Host:    config.Host{Hostname: "jopi_app"},
		Timeout: "not-a-duration",
	})

	assert.Error(t, err)
}
