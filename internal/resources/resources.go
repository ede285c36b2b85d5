// Package resources serves the curated job-hunting link catalog. The
// catalog ships embedded in the binary and is split into a local and an
// international section.
package resources

import (
	_ "embed"
	"fmt"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed resources.yaml
var catalogYAML []byte

type Resource struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Region      string `yaml:"region"`
	URL         string `yaml:"url"`
}

// Catalog holds both sections of the link collection.
type Catalog struct {
	Pakistan      []Resource `yaml:"pakistan"`
	International []Resource `yaml:"international"`
}

// Load parses the embedded catalog. The result is a fresh copy on every
// call so callers can sort or filter without touching shared state.
func Load() (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(catalogYAML, &c); err != nil {
		return nil, fmt.Errorf("parse resource catalog: %w", err)
	}
	return &c, nil
}

// SortByName orders a section alphabetically using locale-aware,
// case-insensitive collation.
func SortByName(rs []Resource) {
	c := collate.New(language.English, collate.IgnoreCase)
	c.Sort(byName(rs))
}

type byName []Resource

func (b byName) Len() int           { return len(b) }
func (b byName) Swap(i, j int)      { b[i], b[j] = b[j], b[i] }
func (b byName) Bytes(i int) []byte { return []byte(b[i].Name) }
