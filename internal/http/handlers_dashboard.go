package http

import (
	"net/http"

	"careerpulse/internal/core"
)

type applicationRow struct {
	ID      int64
	Company string
	Title   string
	Status  statusView
	Date    string
	Notes   string
}

func applicationRows(apps []core.Application) []applicationRow {
	rows := make([]applicationRow, len(apps))
	for i, a := range apps {
		rows[i] = applicationRow{
			ID:      a.ID,
			Company: a.Company,
			Title:   a.Title,
			Status:  statusViewOf(a.Status),
			Date:    a.Date.String(),
			Notes:   a.Notes,
		}
	}
	return rows
}

// handleIndex renders the dashboard: the full collection sorted most
// recent first, with per-status counters on top.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	apps := s.tracker.ListApplications()
	histogram := core.StatusHistogram(apps)

	type counter struct {
		Status statusView
		Count  int
	}
	counters := make([]counter, len(histogram))
	for i, c := range histogram {
		counters[i] = counter{Status: statusViewOf(c.Status), Count: c.Count}
	}

	data := struct {
		Theme        string
		Total        int
		Counters     []counter
		Applications []applicationRow
	}{
		Theme:        string(s.settings.Load(r.Context()).Theme),
		Total:        len(apps),
		Counters:     counters,
		Applications: applicationRows(apps),
	}
	s.render(w, r, "index.html", data)
}
