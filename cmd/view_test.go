package cmd

import (
	"net/http"
	"testing"
	"time"

	"github.com/NikolasTh90/healthwatcher/pkg/probe"
	"github.com/NikolasTh90/healthwatcher/pkg/watcher"
	"github.com/stretchr/testify/assert"
)

func TestRenderSnapshotListsEveryTarget(t *testing.T) {
	snapshot := watcher.Snapshot{
		Healthy: false,
		Tally:   1,
		Total:   3,
		Targets: []watcher.TargetStatus{
			{Name: "Jopi", Result: probe.Healthy()},
			{Name: "Synergas", Result: probe.Unhealthy(http.StatusServiceUnavailable)},
			{Name: "Cache", Result: probe.Error(assert.AnError)},
		},
		CheckedAt: time.Now(),
	}

	out := renderSnapshot(snapshot)

	assert.Contains(t, out, "Jopi")
	assert.Contains(t, out, "Synergas")
	assert.Contains(t, out, "Cache")
	assert.Contains(t, out, "503")
	assert.Contains(t, out, assert.AnError.Error())
	assert.Contains(t, out, "1/3 healthy")
}

func TestRenderSnapshotAllHealthySummary(t *testing.T) {
	snapshot := watcher.Snapshot{
		Healthy: true,
		Tally:   2,
		Total:   2,
		Targets: []watcher.TargetStatus{
			{Name: "Jopi", Result: probe.Healthy()},
			{Name: "Synergas", Result: probe.Healthy()},
		},
	}

	out := renderSnapshot(snapshot)

	assert.Contains(t, out, "all targets healthy")
	assert.Contains(t, out, "2/2 healthy")
}
