// SPDX-License-Identifier: MIT
// Package: radpool-dlc/document
//
// decode.go - documents → validated contract terms.

package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jayendramadaram/radpool-dlc/contract"
)

// Format identifies a document encoding.
type Format int

const (
	// FormatJSON is the reference encoding.
	FormatJSON Format = iota
	// FormatYAML carries the same shape as FormatJSON.
	FormatYAML
)

// String returns "json" or "yaml".
func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "json"
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("FormatFromPath(%q): %w", path, ErrUnsupportedFormat)
	}
}

// Decode reads a JSON document from r.
func Decode(r io.Reader, opts ...Option) (contract.ContractInput, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return contract.ContractInput{}, fmt.Errorf("Decode: %w", err)
	}

	return decodeJSON("Decode", raw, newConfig(opts...))
}

// DecodeJSON decodes a JSON document.
func DecodeJSON(raw []byte, opts ...Option) (contract.ContractInput, error) {
	return decodeJSON("DecodeJSON", raw, newConfig(opts...))
}

// DecodeYAML decodes a YAML document by converting it to JSON first.
func DecodeYAML(raw []byte, opts ...Option) (contract.ContractInput, error) {
	js, err := yamlToJSON(raw)
	if err != nil {
		return contract.ContractInput{}, fmt.Errorf("DecodeYAML: %w: %w", ErrMalformed, err)
	}

	return decodeJSON("DecodeYAML", js, newConfig(opts...))
}

// DecodeFormat decodes raw in the given format.
func DecodeFormat(raw []byte, f Format, opts ...Option) (contract.ContractInput, error) {
	if f == FormatYAML {
		return DecodeYAML(raw, opts...)
	}

	return DecodeJSON(raw, opts...)
}

// LoadFile reads and decodes the document at path, choosing the format by
// extension.
func LoadFile(path string, opts ...Option) (contract.ContractInput, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return contract.ContractInput{}, err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return contract.ContractInput{}, fmt.Errorf("LoadFile: %w", err)
	}
	c, err := DecodeFormat(raw, f, opts...)
	if err != nil {
		return contract.ContractInput{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	return c, nil
}

func decodeJSON(method string, raw []byte, cfg config) (contract.ContractInput, error) {
	if cfg.schema {
		if err := validateSchema(method, raw); err != nil {
			return contract.ContractInput{}, err
		}
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	var d contractDoc
	if err := dec.Decode(&d); err != nil {
		return contract.ContractInput{}, fmt.Errorf("%s: %w: %w", method, ErrMalformed, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return contract.ContractInput{}, fmt.Errorf("%s: trailing data after document: %w", method, ErrMalformed)
	}

	c, err := d.toContract()
	if err != nil {
		return contract.ContractInput{}, fmt.Errorf("%s: %w", method, err)
	}

	return c, nil
}

// yamlToJSON re-encodes a YAML document as JSON. Mappings with non-string
// keys cannot be represented and fail in json.Marshal.
func yamlToJSON(raw []byte) ([]byte, error) {
	var v interface{}
	if err := yaml.Unmarshal(raw, &v); err != nil {
		return nil, err
	}

	return json.Marshal(v)
}
