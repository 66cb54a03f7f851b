// SPDX-License-Identifier: MIT
// Package document reads and writes contract terms as structured documents
// (JSON, or YAML with the same shape) and computes the digest both parties
// compare before negotiating.
//
// Document shape:
//
//	{
//	  "fee_rate": 2, "offer_collateral": 100000, "accept_collateral": 0,
//	  "contract_infos": [{
//	    "contract_descriptor": {"Numerical": {
//	      "pieces": [{"points": [{"event_outcome": 0, "outcome_payout": 0, "extra_precision": 0}, ...]}, ...],
//	      "rounding_intervals": [{"begin_interval": 0, "rounding_mod": 1}],
//	      "difference_params": {"max_error_exponent": 5, "min_support_exponent": 3, "maximize_coverage": true},
//	      "oracle_numeric_info": {"base": 2, "digit_counts": [20]}
//	    }},
//	    "oracles": {"public_keys": ["<64 hex chars>"], "event_id": "btcusd1624943400", "threshold": 1}
//	  }]
//	}
//
// The enumerated variant is {"Enumerated": {"outcome_payouts": [{"outcome":
// "win", "offer_payout": 300, "accept_payout": 0}, ...]}}.
//
// Decoding pipeline:
//
//  1. JSON-schema check against the embedded contract.schema.json
//     (github.com/santhosh-tekuri/jsonschema/v5); disable with WithSchemaValidation(false).
//  2. Strict decode: unknown fields and trailing data are rejected.
//  3. Rebuild through the contract builders, so every contract-level rule
//     (non-empty sets, threshold bounds, piece sequence) is enforced with
//     the contract package's sentinel errors. Piece i of "pieces" becomes
//     piece number i+1.
//
// YAML input is converted to JSON first (gopkg.in/yaml.v3); quote hex keys
// that consist only of digits, or YAML will read them as numbers.
//
// Encoding emits the same shape; decode(encode(c)) equals c field for field,
// arrays in the same order. Digest is "sha256:" + hex of the SHA-256 of the
// compact encoding.
//
// Errors (sentinel):
//
//	– ErrSchema            the document violates the schema.
//	– ErrMalformed         syntax error, wrong type, unknown field, bad descriptor tag.
//	– ErrUnsupportedFormat file extension is neither .json, .yaml nor .yml.
//
// Contract and oracle sentinels pass through wrapped and stay matchable with errors.Is.
package document
