// Package catalog provides the destination catalogue searched as pages.
//
// The default catalogue is compiled into the binary from pages.yaml. A
// catalogue file on disk can replace it.
package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/relay/internal/core/domain"
	"github.com/custodia-labs/relay/internal/core/ports/driven"
)

//go:embed pages.yaml
var embeddedPages []byte

// Ensure Catalog implements the interface.
var _ driven.PageCatalog = (*Catalog)(nil)

// document is the on-disk shape of a catalogue.
type document struct {
	Pages []domain.Page `yaml:"pages"`
}

// Catalog is a YAML-defined, read-only page catalogue.
// The source is parsed once, on first use.
type Catalog struct {
	load func() ([]domain.Page, error)
}

// New returns the embedded catalogue.
func New() *Catalog {
	return fromBytes("embedded catalogue", embeddedPages)
}

// Load returns a catalogue backed by a YAML file. The file is read and
// parsed on first use; an unreadable or malformed file makes Pages fail.
func Load(path string) *Catalog {
	return &Catalog{
		load: sync.OnceValues(func() ([]domain.Page, error) {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("reading catalogue: %w", err)
			}
			return parse(path, data)
		}),
	}
}

func fromBytes(name string, data []byte) *Catalog {
	return &Catalog{
		load: sync.OnceValues(func() ([]domain.Page, error) {
			return parse(name, data)
		}),
	}
}

// Pages returns the catalogue in declaration order.
func (c *Catalog) Pages(_ context.Context) ([]domain.Page, error) {
	pages, err := c.load()
	if err != nil {
		return nil, err
	}
	out := make([]domain.Page, len(pages))
	for i, p := range pages {
		p.Keywords = slices.Clone(p.Keywords)
		out[i] = p
	}
	return out, nil
}

// parse decodes and validates a catalogue. Every page needs a title and a
// unique path.
func parse(name string, data []byte) ([]domain.Page, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrCorruptRecord, name, err)
	}

	seen := make(map[string]bool, len(doc.Pages))
	for i, p := range doc.Pages {
		if p.Title == "" || p.Path == "" {
			return nil, fmt.Errorf("%w: %s: page %d needs a title and a path", domain.ErrCorruptRecord, name, i)
		}
		if seen[p.Path] {
			return nil, fmt.Errorf("%w: %s: duplicate path %s", domain.ErrCorruptRecord, name, p.Path)
		}
		seen[p.Path] = true
	}
	return doc.Pages, nil
}
