// Package lexicon holds the food-domain vocabulary used by the correction
// pipeline: known-correct terms with frequencies, the protected-terms
// gazetteer, the literal misspelling map, and synonym sets for query
// expansion.
//
// A Store is built once at startup, either from a precomputed repository
// (Load) or from the small built-in fallback (Default). After that it is
// read-only, so the pipeline reads it concurrently without locking.
//
// The Speller is a general dictionary corrector trained on the store's
// terms. It complements the store's exact edit-distance scan: the speller is
// fast and broad, the scan is exhaustive and deterministic.
package lexicon
