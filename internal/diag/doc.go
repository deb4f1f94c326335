// Package diag defines the core diagnostic model shared by all pipeline phases.
//
// # Purpose
//
//   - Provide deterministic, serialisable data structures that capture findings
//     produced by the lexer / object parser / key-order analysis.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to concrete storage or formatting layers.
//   - Model fix suggestions as structured edits that the driver or CLI can
//     apply.
//
// # Scope
//
// Package diag does not perform any formatting, IO, CLI integration, or
// interactive behaviour. Rendering responsibilities live in internal/diagfmt,
// whereas selection and application of fixes lives in internal/fix.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with stable string form.
//   - Message – human oriented text; keep it short and actionable.
//   - Primary span – the canonical source.Span pointing to the issue.
//   - Notes – optional secondary spans/messages for additional context.
//   - Fixes – optional Fix records describing how to address the problem.
//
// # Fix suggestions
//
// Fix represents a possible automated correction. Each fix carries a Title,
// a Kind (quick fix vs rewrite), an Applicability confidence level, an
// optional IsPreferred mark, and concrete TextEdits. Fixes are intentionally
// data-only; TextEdit.OldText acts as an optional guard that the fix engine
// uses to validate the context before applying edits.
//
// # Emitting diagnostics
//
// Phases use a diag.Reporter to decouple emission from storage, either
// directly or through ReportBuilder (ReportError/ReportWarning/ReportInfo
// plus WithNote / WithFix, then Emit). diag.BagReporter aggregates
// diagnostics into a Bag with a deterministic sort order and a hard cap.
package diag
