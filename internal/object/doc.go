// Package object parses the object-literal notation into the entry
// sequences the key-order analysis consumes.
//
// Each Entry is one of four kinds: a static key, a computed key whose
// expression is a single compile-time literal (equivalent to a static
// key), a computed key with a dynamic expression, or a spread element.
// Entry spans cover the entry's tokens plus attached leading comments
// and deliberately exclude the separating comma, so a reordering fix can
// swap entry texts without touching punctuation.
//
// The parser also records, for every adjacent entry pair, the line
// ranges of the tokens and detached comments between them. That is the
// only information blank-line group detection needs, which keeps
// package keyorder independent of the front-end.
package object
