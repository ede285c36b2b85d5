package http

import (
	"net/http"
	"strconv"
	"strings"

	"careerpulse/internal/core"
	"careerpulse/internal/store"
)

// sanitizeInput removes potentially dangerous characters and trims whitespace
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	// Remove control characters except tab, newline, carriage return
	result := strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1 // remove character
		}
		return r
	}, s)
	return result
}

// idParam reads and parses the id query parameter.
func idParam(r *http.Request) (int64, bool) {
	v := strings.TrimSpace(r.URL.Query().Get("id"))
	if v == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// parseFields extracts the record fields from a submitted form. The date
// field is optional and defaults to today, matching the form default.
func parseFields(r *http.Request) (store.Fields, error) {
	f := store.Fields{
		Company: sanitizeInput(r.Form.Get("company")),
		Title:   sanitizeInput(r.Form.Get("title")),
		Notes:   sanitizeInput(r.Form.Get("notes")),
	}

	status, err := core.ParseStatus(strings.TrimSpace(r.Form.Get("status")))
	if err != nil {
		return store.Fields{}, err
	}
	f.Status = status

	if v := strings.TrimSpace(r.Form.Get("date")); v != "" {
		date, err := core.ParseDate(v)
		if err != nil {
			return store.Fields{}, err
		}
		f.Date = date
	} else {
		f.Date = core.Today()
	}

	return f, nil
}

// statusView is the template-facing representation of a status badge.
type statusView struct {
	Value    string
	CSSClass string
	Icon     string
}

func statusViewOf(s core.Status) statusView {
	return statusView{
		Value:    string(s),
		CSSClass: s.CSSClass(),
		Icon:     core.StatusIcon(s),
	}
}

// statusOptions lists every status for form selects.
func statusOptions() []statusView {
	out := make([]statusView, len(core.Statuses))
	for i, s := range core.Statuses {
		out[i] = statusViewOf(s)
	}
	return out
}
