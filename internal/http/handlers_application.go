package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"careerpulse/internal/core"
	"careerpulse/internal/store"
)

// handleApplicationDetail renders a single record by its id query param.
func (s *Server) handleApplicationDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		http.Error(w, "missing or invalid id", http.StatusBadRequest)
		return
	}

	app, err := s.tracker.GetApplication(id)
	if errors.Is(err, store.ErrNotFound) {
		http.NotFound(w, r)
		return
	}

	data := struct {
		Theme       string
		Application applicationRow
	}{
		Theme:       string(s.settings.Load(r.Context()).Theme),
		Application: applicationRows([]core.Application{app})[0],
	}
	s.render(w, r, "application.html", data)
}

// handleNewApplication shows the blank form on GET and creates the record
// on POST.
func (s *Server) handleNewApplication(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		data := s.formData(r, "Add Application", "/applications/new", applicationRow{
			Status: statusViewOf(core.StatusPending),
			Date:   core.Today().String(),
		})
		s.render(w, r, "form.html", data)
	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		fields, err := parseFields(r)
		if err != nil {
			s.renderFormError(w, r, "Add Application", "/applications/new", err)
			return
		}
		app, err := s.tracker.AddApplication(r.Context(), fields)
		if err != nil {
			s.renderFormError(w, r, "Add Application", "/applications/new", err)
			return
		}
		slog.InfoContext(r.Context(), "Application created", "record_id", app.ID, "company", app.Company)
		http.Redirect(w, r, "/", http.StatusSeeOther)
	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handleEditApplication shows the prefilled form on GET and replaces the
// record fields on POST.
func (s *Server) handleEditApplication(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		http.Error(w, "missing or invalid id", http.StatusBadRequest)
		return
	}
	action := "/applications/edit?id=" + strconv.FormatInt(id, 10)

	switch r.Method {
	case http.MethodGet:
		app, err := s.tracker.GetApplication(id)
		if errors.Is(err, store.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		data := s.formData(r, "Edit Application", action, applicationRows([]core.Application{app})[0])
		s.render(w, r, "form.html", data)
	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		fields, err := parseFields(r)
		if err != nil {
			s.renderFormError(w, r, "Edit Application", action, err)
			return
		}
		if _, err := s.tracker.UpdateApplication(r.Context(), id, fields); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				http.NotFound(w, r)
				return
			}
			s.renderFormError(w, r, "Edit Application", action, err)
			return
		}
		slog.InfoContext(r.Context(), "Application updated", "record_id", id)
		http.Redirect(w, r, "/", http.StatusSeeOther)
	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handleDeleteApplication removes a record. Only POST is accepted so a
// crawler following links cannot delete data.
func (s *Server) handleDeleteApplication(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	id, ok := idParam(r)
	if !ok {
		http.Error(w, "missing or invalid id", http.StatusBadRequest)
		return
	}
	if err := s.tracker.DeleteApplication(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		slog.ErrorContext(r.Context(), "Application delete failed", "record_id", id, "error", err)
		http.Error(w, "delete failed", http.StatusInternalServerError)
		return
	}
	slog.InfoContext(r.Context(), "Application deleted", "record_id", id)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

type formPage struct {
	Theme       string
	Title       string
	Action      string
	Error       string
	Statuses    []statusView
	Application applicationRow
}

func (s *Server) formData(r *http.Request, title, action string, app applicationRow) formPage {
	return formPage{
		Theme:       string(s.settings.Load(r.Context()).Theme),
		Title:       title,
		Action:      action,
		Statuses:    statusOptions(),
		Application: app,
	}
}

func (s *Server) renderFormError(w http.ResponseWriter, r *http.Request, title, action string, err error) {
	data := s.formData(r, title, action, applicationRow{
		Company: sanitizeInput(r.Form.Get("company")),
		Title:   sanitizeInput(r.Form.Get("title")),
		Status:  statusViewOf(core.StatusPending),
		Date:    sanitizeInput(r.Form.Get("date")),
		Notes:   sanitizeInput(r.Form.Get("notes")),
	})
	data.Error = err.Error()
	w.WriteHeader(http.StatusUnprocessableEntity)
	s.renderStatusSet(w, r, "form.html", data)
}

// renderStatusSet is render for responses whose status code was already
// written.
func (s *Server) renderStatusSet(w http.ResponseWriter, r *http.Request, name string, data any) {
	if s.templates == nil {
		return
	}
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		slog.ErrorContext(r.Context(), "Template execution failed",
			"error", err, "template", name, "request_id", requestIDFrom(r.Context()))
	}
}
