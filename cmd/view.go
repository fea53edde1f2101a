package cmd

import (
	"fmt"

	"github.com/NikolasTh90/healthwatcher/pkg/probe"
	"github.com/NikolasTh90/healthwatcher/pkg/watcher"
	"github.com/charmbracelet/lipgloss"
)

var styleHealthy = lipgloss.NewStyle().Foreground(lipgloss.Color("#00B785")).Bold(true)
var styleUnhealthy = lipgloss.NewStyle().Foreground(lipgloss.Color("#E08D00")).Bold(true)
var styleFailed = lipgloss.NewStyle().Foreground(lipgloss.Color("#E1244C")).Bold(true)
var styleHighlight = lipgloss.NewStyle().Foreground(lipgloss.Color("#407FF8")).Bold(true)

func renderSnapshot(snapshot watcher.Snapshot) string {
	lines := make([]string, 0, len(snapshot.Targets)+1)

	for _, target := range snapshot.Targets {
		lines = append(lines, targetStatusLine(target))
	}

	lines = append(lines, summaryLine(snapshot))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func targetStatusLine(target watcher.TargetStatus) string {
	switch target.Result.State {
	case probe.StateHealthy:
		return lipgloss.JoinHorizontal(lipgloss.Left,
			styleHealthy.Render("▶︎"), " ",
			styleHighlight.Render(target.Name), " (",
			styleHealthy.Render("healthy"), ")",
		)
	case probe.StateUnhealthy:
		return lipgloss.JoinHorizontal(lipgloss.Left,
			styleUnhealthy.Render("◼︎"), " ",
			styleHighlight.Render(target.Name), " (",
			styleUnhealthy.Render("unhealthy"), "; status=",
			styleHighlight.Render(fmt.Sprintf("%d", target.Result.StatusCode)), ")",
		)
	default:
		return lipgloss.JoinHorizontal(lipgloss.Left,
			styleFailed.Render("◼︎"), " ",
			styleHighlight.Render(target.Name), " (",
			styleFailed.Render("error"), "; ",
			target.Result.Message, ")",
		)
	}
}

func summaryLine(snapshot watcher.Snapshot) string {
	tally := fmt.Sprintf("%d/%d healthy", snapshot.Tally, snapshot.Total)

	if snapshot.Healthy {
		return lipgloss.JoinHorizontal(lipgloss.Left,
			styleHealthy.Render("all targets healthy"), " (", tally, ")",
		)
	}

	return lipgloss.JoinHorizontal(lipgloss.Left,
		styleFailed.Render("some targets unhealthy"), " (", tally, ")",
	)
}
