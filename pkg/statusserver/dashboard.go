package statusserver

import (
	"html/template"
	"net/http"

	"github.com/Masterminds/sprig/v3"
	"github.com/NikolasTh90/healthwatcher/pkg/watcher"
	log "github.com/sirupsen/logrus"
)

const dashboardTemplate = `<!DOCTYPE html>
<html>
<head>
	<meta charset="utf-8">
	<title>Health Watcher</title>
	<style>
		body { font-family: sans-serif; margin: 2em; }
		table { border-collapse: collapse; }
		td, th { border: 1px solid #ccc; padding: 0.4em 0.8em; text-align: left; }
		.healthy { color: #00b785; }
		.unhealthy { color: #e08d00; }
		.error { color: #e1244c; }
	</style>
</head>
<body>
	<h1>Health Watcher</h1>
{{- if .HasSnapshot }}
	<p>
		{{ .Snapshot.Tally }}/{{ .Snapshot.Total }} targets healthy,
		last checked {{ .Snapshot.CheckedAt | date "2006-01-02 15:04:05" }}
	</p>
	<table>
		<tr><th>Target</th><th>State</th><th>Detail</th></tr>
{{- range .Snapshot.Targets }}
		<tr>
			<td>{{ .Name }}</td>
			<td class="{{ .Result.State }}">{{ .Result.State | toString | upper }}</td>
			<td>
{{- if .Result.Message }}{{ .Result.Message }}{{ else if .Result.StatusCode }}HTTP {{ .Result.StatusCode }}{{ else }}{{ "-" }}{{ end -}}
			</td>
		</tr>
{{- end }}
	</table>
{{- else }}
	<p>No iteration has finished yet.</p>
{{- end }}
</body>
</html>
`

type dashboardData struct {
	HasSnapshot bool
	Snapshot    watcher.Snapshot
}

var dashboard = template.Must(
	template.New("dashboard").Funcs(sprig.HtmlFuncMap()).Parse(dashboardTemplate),
)

func (s *Server) HandleDashboard(res http.ResponseWriter, req *http.Request) {
	data := dashboardData{}
	data.Snapshot, data.HasSnapshot = s.watcher.Latest()

	res.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := dashboard.Execute(res, &data); err != nil {
		log.Errorf("failed to render dashboard: %s", err)
	}
}
