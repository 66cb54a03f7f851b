// SPDX-License-Identifier: MIT
// Package: radpool-dlc/document
//
// options.go - functional options for decoding, encoding and batch validation.
//
// Contract:
//   - Options are applied in order; later options override earlier ones.
//   - Option constructors panic on meaningless values (WithConcurrency(n<1)),
//     decoding and encoding never panic.
//
// Defaults:
//   - schema validation  on
//   - indent             none (compact output)
//   - concurrency        4 documents in flight

package document

// Option customizes decode, encode and batch behavior.
type Option func(*config)

type config struct {
	schema bool
	prefix string
	indent string
	jobs   int
}

const defaultJobs = 4

func newConfig(opts ...Option) config {
	cfg := config{
		schema: true,
		jobs:   defaultJobs,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSchemaValidation turns the JSON-schema step of decoding on or off.
// With the schema off, shape errors surface from the strict decoder as
// ErrMalformed, and contract rules still apply.
func WithSchemaValidation(on bool) Option {
	return func(c *config) {
		c.schema = on
	}
}

// WithIndent makes Encode and MarshalJSON emit indented JSON, as json.MarshalIndent.
// Digest ignores this option.
func WithIndent(prefix, indent string) Option {
	return func(c *config) {
		c.prefix, c.indent = prefix, indent
	}
}

// WithConcurrency bounds how many documents a batch validates at once.
// Panics if n < 1.
func WithConcurrency(n int) Option {
	if n < 1 {
		panic("document: WithConcurrency(n<1)")
	}
	return func(c *config) {
		c.jobs = n
	}
}
