package server

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"stockanalyzer/models"
)

//go:embed templates/report.html
var templateFS embed.FS

var reportTmpl = template.Must(template.New("report.html").Funcs(template.FuncMap{
	"pct":   func(v float64) string { return fmt.Sprintf("%.2f%%", v*100) },
	"money": func(v float64) string { return fmt.Sprintf("$%.2f", v) },
	"num":   func(v float64) string { return fmt.Sprintf("%.3f", v) },
	"stars": func(n int) string { return strings.Repeat("★", n) + strings.Repeat("☆", 5-n) },
	"lower": strings.ToLower,
}).ParseFS(templateFS, "templates/report.html"))

// renderReport writes the HTML report for a completed analysis. The template
// consumes only the plain result object.
func (s *Server) renderReport(w http.ResponseWriter, result *models.AnalysisResult) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := reportTmpl.Execute(w, result); err != nil {
		s.logger.Error().Err(err).Msg("Error rendering report")
	}
}
