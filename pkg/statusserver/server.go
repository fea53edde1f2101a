package statusserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/NikolasTh90/healthwatcher/pkg/watcher"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

// Server exposes the latest watcher iteration over HTTP: a JSON status
// endpoint, a websocket event stream and a small HTML dashboard.
type Server struct {
	watcher  *watcher.Watcher
	upgrader websocket.Upgrader
}

func New(w *watcher.Watcher) *Server {
	return &Server{
		watcher: w,
	}
}

func (s *Server) Run(ctx context.Context, listenPort int) error {
	m := mux.NewRouter()
	m.Path("/status").HandlerFunc(s.HandleStatus)
	m.Path("/events").HandlerFunc(s.HandleEvents)
	m.Path("/").HandlerFunc(s.HandleDashboard)

	server := http.Server{
		Addr:    fmt.Sprintf(":%d", listenPort),
		Handler: m,
	}

	go func() {
		<-ctx.Done()
		log.Info("shutting down status server")
		_ = server.Shutdown(context.Background())
	}()

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}

	return nil
}

// HandleStatus reports the latest finished iteration. The response code is
// 200 only when every target was healthy; 503 otherwise, including before
// the first iteration has finished.
func (s *Server) HandleStatus(res http.ResponseWriter, req *http.Request) {
	res.Header().Set("Content-Type", "application/json")

	snapshot, ok := s.watcher.Latest()
	if !ok {
		res.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(res).Encode(map[string]string{"message": "no iteration has finished yet"})
		return
	}

	if !snapshot.Healthy {
		res.WriteHeader(http.StatusServiceUnavailable)
	}

	_ = json.NewEncoder(res).Encode(&snapshot)
}

// HandleEvents upgrades to a websocket and pushes one snapshot per finished
// iteration, starting with the latest one if present.
func (s *Server) HandleEvents(res http.ResponseWriter, req *http.Request) {
	conn, err := s.upgrader.Upgrade(res, req, nil)
	if err != nil {
		log.Errorf("failed to upgrade events connection: %s", err)
		return
	}
	defer conn.Close()

	snapshots, unsubscribe := s.watcher.Subscribe()
	defer unsubscribe()

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if snapshot, ok := s.watcher.Latest(); ok {
		if err := conn.WriteJSON(&snapshot); err != nil {
			return
		}
	}

	for {
		select {
		case snapshot := <-snapshots:
			if err := conn.WriteJSON(&snapshot); err != nil {
				return
			}
		case <-closed:
			return
		case <-req.Context().Done():
			return
		}
	}
}
