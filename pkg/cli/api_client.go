package cli

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"

	"github.com/NikolasTh90/healthwatcher/pkg/watcher"
	"github.com/gorilla/websocket"
)

// APIClient talks to a running watcher daemon's status API. The address is
// either an http(s) URL or a unix:// socket path.
type APIClient struct {
	apiAddress string
}

func NewAPIClient(apiAddress string) *APIClient {
	return &APIClient{
		apiAddress: apiAddress,
	}
}

// Status fetches the latest iteration snapshot. A 503 response still carries
// a valid snapshot body (it means some targets are unhealthy), so the caller
// decides what to do with the status code.
func (api *APIClient) Status() *TypedAPIResponse[watcher.Snapshot] {
	client, u, err := api.buildHTTPClientAndURL()
	if err != nil {
		return &TypedAPIResponse[watcher.Snapshot]{Error: err}
	}

	return NewTypedAPIResponse(watcher.Snapshot{})(client.Get(fmt.Sprintf("%s/status", u)))
}

// StatusRaw fetches the latest snapshot without decoding it, for raw JSON
// output.
func (api *APIClient) StatusRaw() APIResponse {
	client, u, err := api.buildHTTPClientAndURL()
	if err != nil {
		return &CommonAPIResponse{Error: err}
	}

	return NewAPIResponse(client.Get(fmt.Sprintf("%s/status", u)))
}

// Events streams iteration snapshots from the daemon's websocket endpoint
// until the connection is closed.
func (api *APIClient) Events() APIResponse {
	dialer, u, err := api.buildWebsocketURL()
	if err != nil {
		return &CommonAPIResponse{Error: err}
	}

	u.Path = "/events"

	handler := func(ctx context.Context, conn *websocket.Conn, msgChan chan []byte, errChan chan error) {
		for {
			select {
			default:
				_, msg, err := conn.ReadMessage()
				if err != nil {
					errChan <- err
					return
				}
				msgChan <- msg
			case <-ctx.Done():
				return
			}
		}
	}

	return NewStreamingAPIResponse(u, dialer, handler)
}

func (api *APIClient) buildHTTPClientAndURL() (*http.Client, *url.URL, error) {
	u, err := url.Parse(api.apiAddress)
	if err != nil {
		return nil, nil, err
	}
	if u.Scheme != "unix" {
		return &http.Client{}, u, nil
	}

	socketPath := u.Path
	u.Scheme = "http"
	u.Host = "unix"
	return &http.Client{
		Transport: &http.Transport{
			DialContext: func(_ context.Context, _, _ string) (net.Conn, error) {
				return net.Dial("unix", socketPath)
			},
		},
	}, u, nil
}

func (api *APIClient) buildWebsocketURL() (*websocket.Dialer, *url.URL, error) {
	u, err := url.Parse(api.apiAddress)
	if err != nil {
		return nil, nil, err
	}
	if u.Scheme != "unix" {
		u.Scheme = "ws"
		return websocket.DefaultDialer, u, nil
	}
	socketPath := u.Path

	dialer := &websocket.Dialer{
		NetDial: func(network, addr string) (net.Conn, error) {
			return net.Dial("unix", socketPath)
		},
	}

	u.Scheme = "ws"
	u.Host = "unix"
	return dialer, u, nil
}
