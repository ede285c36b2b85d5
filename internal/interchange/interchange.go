// Package interchange converts the application collection to and from the
// external JSON document used for export and import.
package interchange

import (
	"encoding/json"
	"errors"
	"fmt"

	"careerpulse/internal/core"
)

// ExportFilename is the suggested name for the downloaded document.
const ExportFilename = "careerpulse-data.json"

var (
	// ErrParse marks a payload that is not well-formed JSON.
	ErrParse = errors.New("invalid JSON document")
	// ErrShape marks well-formed JSON that is not an array of
	// application-shaped objects.
	ErrShape = errors.New("document is not an array of application records")
)

// Export serializes the collection as a self-describing, indented JSON
// array. Field names are preserved from the interchange format.
func Export(apps []core.Application) ([]byte, error) {
	if apps == nil {
		apps = []core.Application{}
	}
	data, err := json.MarshalIndent(apps, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode applications: %w", err)
	}
	return data, nil
}

// Import parses an exported document. Syntax problems surface as ErrParse,
// structural problems as ErrShape; the caller only replaces its state on
// success.
func Import(data []byte) ([]core.Application, error) {
	if !json.Valid(data) {
		return nil, ErrParse
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		return nil, fmt.Errorf("%w: top-level value is not an array", ErrShape)
	}
	// A top-level null also unmarshals cleanly, leaving elements nil.
	if elements == nil {
		return nil, fmt.Errorf("%w: top-level value is not an array", ErrShape)
	}

	apps := make([]core.Application, 0, len(elements))
	seen := make(map[int64]struct{}, len(elements))
	for i, el := range elements {
		var app core.Application
		if err := json.Unmarshal(el, &app); err != nil {
			return nil, fmt.Errorf("%w: element %d: %v", ErrShape, i, err)
		}
		if err := app.Validate(); err != nil {
			return nil, fmt.Errorf("%w: element %d: %v", ErrShape, i, err)
		}
		if _, dup := seen[app.ID]; dup {
			return nil, fmt.Errorf("%w: element %d: duplicate id %d", ErrShape, i, app.ID)
		}
		seen[app.ID] = struct{}{}
		apps = append(apps, app)
	}
	return apps, nil
}
