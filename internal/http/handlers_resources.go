package http

import (
	"net/http"

	"careerpulse/internal/resources"
)

// handleResources renders the curated link catalog, each section sorted
// alphabetically.
func (s *Server) handleResources(w http.ResponseWriter, r *http.Request) {
	if s.catalog == nil {
		http.Error(w, "resource catalog unavailable", http.StatusInternalServerError)
		return
	}

	pakistan := make([]resources.Resource, len(s.catalog.Pakistan))
	copy(pakistan, s.catalog.Pakistan)
	international := make([]resources.Resource, len(s.catalog.International))
	copy(international, s.catalog.International)
	resources.SortByName(pakistan)
	resources.SortByName(international)

	data := struct {
		Theme         string
		Pakistan      []resources.Resource
		International []resources.Resource
	}{
		Theme:         string(s.settings.Load(r.Context()).Theme),
		Pakistan:      pakistan,
		International: international,
	}
	s.render(w, r, "resources.html", data)
}
