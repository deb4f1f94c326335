// Package token defines the token kinds and trivia model for the
// object-literal notation keylint analyzes.
//
// Significant tokens carry their leading trivia (spaces, newlines,
// comments) so later phases can reason about blank lines and attached
// comments without re-reading the source. Trivia spans are exact byte
// ranges into the owning file.
package token
