package http

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"careerpulse/internal/interchange"
)

// maxImportBytes caps uploaded documents.
const maxImportBytes = 5 << 20

// handleExport streams the full collection as a JSON download.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	data, err := s.tracker.ExportData()
	if err != nil {
		slog.ErrorContext(r.Context(), "Export failed", "error", err)
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+interchange.ExportFilename+`"`)
	_, _ = w.Write(data)
}

// handleImport accepts an exported document and replaces the collection.
// The file can arrive as a multipart upload (field "file") or as the raw
// request body.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	data, err := readImportBody(r)
	if err != nil {
		http.Error(w, "could not read upload", http.StatusBadRequest)
		return
	}

	count, err := s.tracker.ImportData(r.Context(), data)
	switch {
	case errors.Is(err, interchange.ErrParse):
		http.Error(w, "not valid JSON", http.StatusUnprocessableEntity)
		return
	case errors.Is(err, interchange.ErrShape):
		http.Error(w, "not an exported applications document", http.StatusUnprocessableEntity)
		return
	case err != nil:
		slog.ErrorContext(r.Context(), "Import failed", "error", err)
		http.Error(w, "import failed", http.StatusInternalServerError)
		return
	}

	slog.InfoContext(r.Context(), "Import completed", "count", count)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func readImportBody(r *http.Request) ([]byte, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxImportBytes)

	if err := r.ParseMultipartForm(maxImportBytes); err == nil {
		file, _, err := r.FormFile("file")
		if err == nil {
			defer file.Close()
			return io.ReadAll(file)
		}
	}
	return io.ReadAll(r.Body)
}
