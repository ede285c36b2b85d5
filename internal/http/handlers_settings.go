package http

import (
	"log/slog"
	"net/http"
	"strings"

	"careerpulse/internal/core"
)

type settingsPage struct {
	Theme    string
	Saved    bool
	Error    string
	Settings core.Settings
}

// handleSettings shows the preferences form on GET and persists the whole
// object on POST. Checkboxes absent from the form body mean unchecked, so
// every save is a full replace.
func (s *Server) handleSettings(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		current := s.settings.Load(r.Context())
		s.render(w, r, "settings.html", settingsPage{
			Theme:    string(current.Theme),
			Settings: current,
		})
	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}

		next := core.Settings{
			Theme: core.Theme(strings.TrimSpace(r.Form.Get("theme"))),
			Notifications: core.Notifications{
				Email:        r.Form.Get("notify_email") == "on",
				InApp:        r.Form.Get("notify_app") == "on",
				StatusChange: r.Form.Get("notify_status") == "on",
			},
			Profile: core.Profile{
				Name:  sanitizeInput(r.Form.Get("name")),
				Email: sanitizeInput(r.Form.Get("email")),
			},
		}

		if err := s.settings.Save(r.Context(), next); err != nil {
			slog.WarnContext(r.Context(), "Settings save rejected", "error", err)
			w.WriteHeader(http.StatusUnprocessableEntity)
			s.renderStatusSet(w, r, "settings.html", settingsPage{
				Theme:    string(s.settings.Load(r.Context()).Theme),
				Error:    err.Error(),
				Settings: next,
			})
			return
		}

		s.render(w, r, "settings.html", settingsPage{
			Theme:    string(next.Theme),
			Saved:    true,
			Settings: next,
		})
	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
