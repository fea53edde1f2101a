package watcher

import (
	"context"
	"sync"
	"time"

	"github.com/NikolasTh90/healthwatcher/internal/config"
	"github.com/NikolasTh90/healthwatcher/pkg/probe"
	log "github.com/sirupsen/logrus"
)

// Target pairs a display name with the probe that checks it.
type Target struct {
	Name  string
	Probe probe.Probe
}

// TargetStatus is the classification of one target within one iteration.
type TargetStatus struct {
	Name   string       `json:"name"`
	Result probe.Result `json:"result"`
}

// Snapshot is the outcome of one finished iteration. It is the only state
// that outlives an iteration, kept solely so the status API can report it.
type Snapshot struct {
	Healthy   bool           `json:"healthy"`
	Tally     int            `json:"tally"`
	Total     int            `json:"total"`
	Targets   []TargetStatus `json:"targets"`
	CheckedAt time.Time      `json:"checkedAt"`
}

// Watcher probes all targets sequentially on a fixed interval and logs the
// per-target and aggregate outcome. Targets and interval are immutable for
// the lifetime of the watcher.
type Watcher struct {
	targets  []Target
	interval time.Duration

	mtx    sync.RWMutex
	latest *Snapshot
	subs   map[chan Snapshot]struct{}
}

func New(targets []Target, interval time.Duration) *Watcher {
	return &Watcher{
		targets:  targets,
		interval: interval,
		subs:     make(map[chan Snapshot]struct{}),
	}
}

// FromConfig builds a watcher from the loaded configuration, preserving
// target declaration order.
func FromConfig(cfg *config.Config) (*Watcher, error) {
	interval, err := cfg.CheckInterval()
	if err != nil {
		return nil, err
	}

	targets := make([]Target, 0, len(cfg.Targets))
	for i := range cfg.Targets {
		p, err := probe.FromConfig(&cfg.Targets[i])
		if err != nil {
			return nil, err
		}
		targets = append(targets, Target{Name: cfg.Targets[i].Name, Probe: p})
	}

	return New(targets, interval), nil
}

func (w *Watcher) Interval() time.Duration {
	return w.interval
}

// Run probes all targets once immediately, then once per interval until the
// context is cancelled. Per-target failures never terminate the loop.
func (w *Watcher) Run(ctx context.Context) error {
	log.Info("Starting Django health watcher...")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.RunIteration()

	for {
		select {
		case <-ctx.Done():
			log.Info("health watcher stopped")
			return nil
		case <-ticker.C:
			w.RunIteration()
		}
	}
}

// RunIteration performs one full pass over all targets in declaration order
// and logs the aggregate tally.
func (w *Watcher) RunIteration() Snapshot {
	snapshot := Snapshot{
		Total:     len(w.targets),
		Targets:   make([]TargetStatus, 0, len(w.targets)),
		CheckedAt: time.Now(),
	}

	for _, target := range w.targets {
		result := w.checkTarget(target)
		if result.IsHealthy() {
			snapshot.Tally++
		}
		snapshot.Targets = append(snapshot.Targets, TargetStatus{Name: target.Name, Result: result})
	}

	snapshot.Healthy = snapshot.Tally == snapshot.Total

	if snapshot.Healthy {
		log.Info("All Django apps are healthy")
	} else {
		log.Warnf("Some Django apps are unhealthy! (%d/%d healthy)", snapshot.Tally, snapshot.Total)
	}

	w.mtx.Lock()
	w.latest = &snapshot
	subs := make([]chan Snapshot, 0, len(w.subs))
	for ch := range w.subs {
		subs = append(subs, ch)
	}
	w.mtx.Unlock()

	for _, ch := range subs {
		select {
		case ch <- snapshot:
		default:
		}
	}

	return snapshot
}

func (w *Watcher) checkTarget(target Target) probe.Result {
	result := target.Probe.Check()

	switch result.State {
	case probe.StateHealthy:
		log.Infof("%s: HEALTHY", target.Name)
	case probe.StateUnhealthy:
		log.Warnf("%s: UNHEALTHY (HTTP %d)", target.Name, result.StatusCode)
	default:
		log.Errorf("%s: ERROR - %s", target.Name, result.Message)
	}

	return result
}

// Latest returns the most recent finished iteration, or false when no
// iteration has finished yet.
func (w *Watcher) Latest() (Snapshot, bool) {
	w.mtx.RLock()
	defer w.mtx.RUnlock()

	if w.latest == nil {
		return Snapshot{}, false
	}
	return *w.latest, true
}

// Subscribe registers a channel that receives every finished iteration.
// Slow subscribers miss snapshots instead of blocking the loop.
func (w *Watcher) Subscribe() (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, 1)

	w.mtx.Lock()
	w.subs[ch] = struct{}{}
	w.mtx.Unlock()

	unsubscribe := func() {
		w.mtx.Lock()
		delete(w.subs, ch)
		w.mtx.Unlock()
	}

	return ch, unsubscribe
}
