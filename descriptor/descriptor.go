// SPDX-License-Identifier: MIT
// Package descriptor reads and writes topology descriptor files: a versioned
// document wrapping one topology.Graph, encoded as YAML or indented JSON.
//
// The format follows the file extension: .yaml and .yml select YAML, .json
// selects JSON. Decoding is strict: unknown fields and unknown versions fail.
package descriptor

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/nocgen/topology"
)

// Version is the document version written by Encode.
const Version = 1

var (
	// ErrUnknownFormat indicates a format or file extension this package
	// does not handle.
	ErrUnknownFormat = errors.New("descriptor: unknown format")

	// ErrVersion indicates a document version this package cannot read.
	ErrVersion = errors.New("descriptor: unsupported version")
)

// Format selects the encoding.
type Format string

const (
	YAML Format = "yaml"
	JSON Format = "json"
)

var (
	yamlExts = []string{".yaml", ".yml"}
	jsonExts = []string{".json"}
)

// Document is the on-disk shape of a descriptor.
type Document struct {
	Version int            `json:"version" yaml:"version"`
	Graph   topology.Graph `json:"graph" yaml:"graph"`
}

// FormatOf returns the format implied by the extension of name.
func FormatOf(name string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(name))
	switch {
	case slices.Contains(yamlExts, ext):
		return YAML, nil
	case slices.Contains(jsonExts, ext):
		return JSON, nil
	default:
		return "", fmt.Errorf("%w: extension %q of %s", ErrUnknownFormat, ext, name)
	}
}

// Encode writes g to w as a Version document.
func Encode(w io.Writer, g *topology.Graph, f Format) error {
	if g == nil {
		return errors.New("descriptor: graph is nil")
	}
	doc := Document{Version: Version, Graph: *g}
	switch f {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("descriptor: encode yaml: %w", err)
		}
		return enc.Close()
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("descriptor: encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// Decode reads one document from r.
func Decode(r io.Reader, f Format) (*topology.Graph, error) {
	var doc Document
	switch f {
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("descriptor: decode yaml: %w", err)
		}
	case JSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("descriptor: decode json: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if doc.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, doc.Version)
	}
	return &doc.Graph, nil
}

// WriteFile encodes g into name, choosing the format from its extension.
// Nothing is written when encoding fails.
func WriteFile(name string, g *topology.Graph) error {
	f, err := FormatOf(name)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err = Encode(&buf, g, f); err != nil {
		return err
	}
	if err = os.WriteFile(name, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("descriptor: %w", err)
	}
	return nil
}

// ReadFile decodes the descriptor stored in name.
func ReadFile(name string) (*topology.Graph, error) {
	f, err := FormatOf(name)
	if err != nil {
		return nil, err
	}
	fh, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("descriptor: %w", err)
	}
	defer fh.Close()
	return Decode(fh, f)
}
