package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"careerpulse/internal/services"
	"careerpulse/internal/storage/memory"
	"careerpulse/internal/store"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	snap := memory.New()
	records, err := store.NewRecords(context.Background(), snap)
	if err != nil {
		t.Fatalf("records: %v", err)
	}
	tracker := services.NewTrackerService(records, nil)
	settings := services.NewSettingsService(store.NewSettings(snap), nil)
	return NewServer(":0", tracker, settings)
}

func addApplication(t *testing.T, srv *Server, company, title, status, date string) {
	t.Helper()
	form := url.Values{
		"company": {company},
		"title":   {title},
		"status":  {status},
		"date":    {date},
	}
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/applications/new", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	srv.Handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("add %s: status=%d body=%s", company, rr.Code, rr.Body.String())
	}
}

func TestIndexAndHealth(t *testing.T) {
	srv := newTestServer(t)
	addApplication(t, srv, "Acme", "Engineer", "Pending", "2024-03-01")

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	srv.Handler.ServeHTTP(rr, req)
	if rr.Code != 200 {
		t.Fatalf("index status=%d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Acme") {
		t.Fatalf("index body missing company")
	}
	if !strings.Contains(rr.Body.String(), "Pending") {
		t.Fatalf("index body missing status counter")
	}

	for _, path := range []string{"/healthz", "/readyz"} {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		srv.Handler.ServeHTTP(rr, req)
		if rr.Code != 200 {
			t.Fatalf("%s status=%d", path, rr.Code)
		}
	}
}

func TestCreateApplicationValidation(t *testing.T) {
	srv := newTestServer(t)

	// Wrong method
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/applications/new", nil)
	srv.Handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rr.Code)
	}

	// Unknown status
	rr = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/applications/new", strings.NewReader("company=Acme&title=Engineer&status=Ghosted&date=2024-03-01"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	srv.Handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rr.Code)
	}

	// Missing company
	rr = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/applications/new", strings.NewReader("company=&title=Engineer&status=Pending&date=2024-03-01"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	srv.Handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rr.Code)
	}
}

func TestDetailEditDeleteFlow(t *testing.T) {
	srv := newTestServer(t)
	addApplication(t, srv, "Globex", "Analyst", "Pending", "2024-01-15")

	apps := srv.tracker.ListApplications()
	if len(apps) != 1 {
		t.Fatalf("expected 1 application, got %d", len(apps))
	}
	id := strconv.FormatInt(apps[0].ID, 10)

	// Detail
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/applications/view?id="+id, nil)
	srv.Handler.ServeHTTP(rr, req)
	if rr.Code != 200 || !strings.Contains(rr.Body.String(), "Globex") {
		t.Fatalf("detail status=%d", rr.Code)
	}

	// Edit form prefilled
	rr = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/applications/edit?id="+id, nil)
	srv.Handler.ServeHTTP(rr, req)
	if rr.Code != 200 || !strings.Contains(rr.Body.String(), "Analyst") {
		t.Fatalf("edit form status=%d", rr.Code)
	}

	// Edit submit
	rr = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/applications/edit?id="+id,
		strings.NewReader("company=Globex&title=Senior+Analyst&status=Hired&date=2024-01-15"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	srv.Handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("edit submit status=%d", rr.Code)
	}
	if got := srv.tracker.ListApplications()[0].Title; got != "Senior Analyst" {
		t.Fatalf("title not updated: %s", got)
	}

	// Delete
	rr = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/applications/delete?id="+id, nil)
	srv.Handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("delete status=%d", rr.Code)
	}
	if n := len(srv.tracker.ListApplications()); n != 0 {
		t.Fatalf("expected empty collection, got %d", n)
	}
}

func TestDetailUnknownID(t *testing.T) {
	srv := newTestServer(t)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/applications/view?id=42", nil)
	srv.Handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/applications/view", nil)
	srv.Handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing id, got %d", rr.Code)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	srv := newTestServer(t)
	addApplication(t, srv, "Acme", "Engineer", "Pending", "2024-03-01")

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/export", nil)
	srv.Handler.ServeHTTP(rr, req)
	if rr.Code != 200 {
		t.Fatalf("export status=%d", rr.Code)
	}
	if cd := rr.Header().Get("Content-Disposition"); !strings.Contains(cd, "careerpulse-data.json") {
		t.Fatalf("unexpected disposition: %s", cd)
	}
	exported := rr.Body.Bytes()

	// Import into a fresh server
	fresh := newTestServer(t)
	rr = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/import", strings.NewReader(string(exported)))
	req.Header.Set("Content-Type", "application/json")
	fresh.Handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("import status=%d body=%s", rr.Code, rr.Body.String())
	}
	if n := len(fresh.tracker.ListApplications()); n != 1 {
		t.Fatalf("expected 1 imported application, got %d", n)
	}
}

func TestImportRejectsBadPayloads(t *testing.T) {
	srv := newTestServer(t)

	cases := []struct {
		name string
		body string
	}{
		{"not json", "{{{"},
		{"not an array", `{"id": 1}`},
		{"null", `null`},
		{"bad element", `[{"id":1,"company":"","title":"x","status":"Pending","date":"2024-01-01","notes":""}]`},
		{"duplicate ids", `[{"id":1,"company":"Acme","title":"x","status":"Pending","date":"2024-01-01","notes":""},{"id":1,"company":"Globex","title":"y","status":"Hired","date":"2024-02-01","notes":""}]`},
	}
	for _, tc := range cases {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/import", strings.NewReader(tc.body))
		req.Header.Set("Content-Type", "application/json")
		srv.Handler.ServeHTTP(rr, req)
		if rr.Code != http.StatusUnprocessableEntity {
			t.Fatalf("%s: expected 422, got %d", tc.name, rr.Code)
		}
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	srv := newTestServer(t)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/settings", nil)
	srv.Handler.ServeHTTP(rr, req)
	if rr.Code != 200 {
		t.Fatalf("settings form status=%d", rr.Code)
	}

	// Save with only one toggle on
	rr = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/settings",
		strings.NewReader("theme=light&notify_app=on&name=Jo&email=jo%40example.com"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	srv.Handler.ServeHTTP(rr, req)
	if rr.Code != 200 {
		t.Fatalf("settings save status=%d body=%s", rr.Code, rr.Body.String())
	}

	saved := srv.settings.Load(req.Context())
	if saved.Theme != "light" {
		t.Fatalf("theme not saved: %s", saved.Theme)
	}
	if saved.Notifications.Email || !saved.Notifications.InApp || saved.Notifications.StatusChange {
		t.Fatalf("toggles not saved: %+v", saved.Notifications)
	}

	// Invalid email rejected
	rr = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/settings",
		strings.NewReader("theme=light&email=nope"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	srv.Handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for bad email, got %d", rr.Code)
	}
}

func TestAnalyticsPage(t *testing.T) {
	srv := newTestServer(t)
	addApplication(t, srv, "Acme", "Engineer", "Pending", "2024-03-01")
	addApplication(t, srv, "Globex", "Analyst", "Hired", "2024-03-20")

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/analytics?year=2024", nil)
	srv.Handler.ServeHTTP(rr, req)
	if rr.Code != 200 {
		t.Fatalf("analytics status=%d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "2024") {
		t.Fatalf("analytics body missing year")
	}
}

func TestResourcesPage(t *testing.T) {
	srv := newTestServer(t)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/resources", nil)
	srv.Handler.ServeHTTP(rr, req)
	if rr.Code != 200 {
		t.Fatalf("resources status=%d", rr.Code)
	}
	for _, name := range []string{"Rozee.pk", "Glassdoor"} {
		if !strings.Contains(rr.Body.String(), name) {
			t.Fatalf("resources body missing %s", name)
		}
	}
}

func TestRequestIDReachesHandlers(t *testing.T) {
	srv := newTestServer(t)

	var captured string
	handler := srv.withSecurityHeaders(func(w http.ResponseWriter, r *http.Request) {
		captured = requestIDFrom(r.Context())
	})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	handler(rr, req)
	if captured == "" {
		t.Fatal("expected a request id in the handler context")
	}
	if requestIDFrom(context.Background()) != "" {
		t.Fatal("expected empty id outside the middleware chain")
	}
}

func TestSecurityHeaders(t *testing.T) {
	srv := newTestServer(t)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	srv.Handler.ServeHTTP(rr, req)
	if got := rr.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Fatalf("missing nosniff header, got %q", got)
	}
	if got := rr.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Fatalf("missing frame options header, got %q", got)
	}
}
