// Package datadiff computes classified differences between two snapshots of
// data: keyed records, ordered lists or free text. Every change is reported
// as an entry with a status (added, deleted, updated, moved or equal) and the
// whole diff is summarised by a single status.
//
// datadiff operates on the go types created by unmarshaling JSON, YAML or
// TOML, which are two complex types:
//   map[string]interface{}
//   []interface{}
// and scalar types:
//   string, float64 (or any go number), bool, nil
// typed maps with string keys & typed slices are accepted too, so documents
// decoded from different formats can be compared with each other.
//
// There are three differs:
//
// DiffObject recurses through nested keyed records, reporting each key.
//
// DiffList aligns two sequences, matching duplicate values left to right and
// optionally matching records on a reference key, reporting moves.
//
// DiffText tokenizes text by character, word or sentence and aligns tokens
// either positionally (visual mode, tuned for rendering) or with Myers'
// O((N+M)D) shortest edit script (strict mode, a minimal diff). Myers'
// algorithm is outlined in:
// An O(ND) Difference Algorithm and Its Variations, Eugene W. Myers
// http://www.xmailserver.org/diff2.pdf
//
// All of them build on Equal, a deep equality check with an order-insensitive
// mode for sequences.
//
// Every function in this package is pure & synchronous: no I/O, no shared
// state, safe to call from many goroutines at once. datadiff only compares,
// it doesn't merge or apply diffs
package datadiff
