// SPDX-License-Identifier: MIT
// Package: radpool-dlc/document
//
// schema.go - embedded JSON schema of the contract document.

package document

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed contract.schema.json
var schemaText string

const schemaURL = "contract.schema.json"

// contractSchema is compiled once at package initialization; the schema is
// part of the binary, so a compile failure is a programmer error.
var contractSchema = jsonschema.MustCompileString(schemaURL, schemaText)

// Schema returns the JSON schema documents are checked against.
func Schema() string {
	return schemaText
}

// validateSchema checks raw JSON against the contract schema. Numbers are
// kept as json.Number so 64-bit amounts are compared exactly.
func validateSchema(method string, raw []byte) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("%s: %w: %w", method, ErrMalformed, err)
	}
	if err := contractSchema.Validate(v); err != nil {
		return fmt.Errorf("%s: %w: %w", method, ErrSchema, err)
	}

	return nil
}
