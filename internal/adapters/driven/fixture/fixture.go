// Package fixture reads seed data files and watches them for changes.
//
// A fixture is a YAML or JSON document with channels, documents and
// activity lists; see domain.Fixture for the field names.
package fixture

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/relay/internal/core/domain"
)

// Format is a fixture encoding.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: unsupported fixture extension %q", domain.ErrInvalidInput, filepath.Ext(path))
	}
}

// Read decodes the fixture file at path.
func Read(path string) (domain.Fixture, error) {
	format, err := FormatFor(path)
	if err != nil {
		return domain.Fixture{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return domain.Fixture{}, fmt.Errorf("opening fixture: %w", err)
	}
	defer f.Close()

	fixture, err := Decode(f, format)
	if err != nil {
		return domain.Fixture{}, fmt.Errorf("%s: %w", path, err)
	}
	return fixture, nil
}

// Decode reads a fixture in the given format. Unknown fields are rejected so
// that typos surface instead of silently importing empty values.
func Decode(r io.Reader, format Format) (domain.Fixture, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return domain.Fixture{}, fmt.Errorf("reading fixture: %w", err)
	}

	var fixture domain.Fixture
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&fixture); err != nil && err != io.EOF {
			return domain.Fixture{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&fixture); err != nil && err != io.EOF {
			return domain.Fixture{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
	default:
		return domain.Fixture{}, fmt.Errorf("%w: unknown format %q", domain.ErrInvalidInput, format)
	}
	return fixture, nil
}
