package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"careerpulse/internal/core"
)

// handleAnalytics renders the monthly submission chart and the status
// distribution table. The year defaults to the current one and can be
// overridden with a query parameter.
func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	year := time.Now().Year()
	if v := strings.TrimSpace(r.URL.Query().Get("year")); v != "" {
		if y, err := strconv.Atoi(v); err == nil && y >= 1970 && y <= 9999 {
			year = y
		} else {
			slog.WarnContext(r.Context(), "Invalid year parameter", "value", v, "corrected_to", year)
		}
	}

	apps := s.tracker.ListApplications()
	monthly := core.MonthlyHistogram(apps, year)
	histogram := core.StatusHistogram(apps)

	max := 0
	for _, n := range monthly {
		if n > max {
			max = n
		}
	}

	type monthBar struct {
		Label  string
		Count  int
		Height int // percent of the tallest bar
	}
	bars := make([]monthBar, 12)
	for i, n := range monthly {
		height := 0
		if max > 0 && n > 0 {
			height = (n*100 + max/2) / max
			if height < 4 {
				height = 4
			}
		}
		bars[i] = monthBar{
			Label:  time.Month(i + 1).String()[:3],
			Count:  n,
			Height: height,
		}
	}

	type statusRow struct {
		Status  statusView
		Count   int
		Percent int
	}
	rows := make([]statusRow, len(histogram))
	for i, c := range histogram {
		pct := 0
		if len(apps) > 0 {
			pct = (c.Count*100 + len(apps)/2) / len(apps)
		}
		rows[i] = statusRow{Status: statusViewOf(c.Status), Count: c.Count, Percent: pct}
	}

	data := struct {
		Theme  string
		Year   int
		Total  int
		Months []monthBar
		Rows   []statusRow
	}{
		Theme:  string(s.settings.Load(r.Context()).Theme),
		Year:   year,
		Total:  len(apps),
		Months: bars,
		Rows:   rows,
	}
	s.render(w, r, "analytics.html", data)
}
