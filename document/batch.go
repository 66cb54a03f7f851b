// SPDX-License-Identifier: MIT
// Package: radpool-dlc/document
//
// batch.go - bounded concurrent validation of many documents.
//
// Contract:
//   - At most WithConcurrency(n) documents are decoded at once (default 4).
//   - A failing document never stops the others; its error is in its Result.
//   - Cancelling ctx stops scheduling; documents not started report ctx.Err().
//   - Results are index-aligned with the inputs.

package document

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jayendramadaram/radpool-dlc/contract"
)

// Result is the outcome of validating one document.
type Result struct {
	// Name is the file path for ValidateFiles, empty for ValidateBatch.
	Name     string
	Contract contract.ContractInput
	Digest   string
	Err      error
}

// ValidateBatch decodes every JSON document in docs.
// The returned error is non-nil only when ctx ended before all documents ran.
func ValidateBatch(ctx context.Context, docs [][]byte, opts ...Option) ([]Result, error) {
	cfg := newConfig(opts...)

	return validateAll(ctx, len(docs), cfg, func(i int) (string, contract.ContractInput, error) {
		c, err := decodeJSON("ValidateBatch", docs[i], cfg)
		return "", c, err
	})
}

// ValidateFiles loads every file in paths (JSON or YAML by extension).
func ValidateFiles(ctx context.Context, paths []string, opts ...Option) ([]Result, error) {
	cfg := newConfig(opts...)

	return validateAll(ctx, len(paths), cfg, func(i int) (string, contract.ContractInput, error) {
		c, err := LoadFile(paths[i], opts...)
		return paths[i], c, err
	})
}

func validateAll(ctx context.Context, n int, cfg config, decode func(i int) (string, contract.ContractInput, error)) ([]Result, error) {
	results := make([]Result, n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.jobs)

	for i := 0; i < n; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i].Err = err
				return err
			}
			name, c, err := decode(i)
			results[i].Name = name
			if err != nil {
				results[i].Err = err
				return nil
			}
			digest, err := Digest(c)
			results[i].Contract, results[i].Digest, results[i].Err = c, digest, err
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}

	return results, nil
}
