// Package diag defines the core diagnostic model shared by all analysis phases.
//
// # Purpose
//
//   - Provide deterministic, serialisable data structures that capture findings
//     produced by the block balance analyzer and the compiler output
//     interpreter.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to concrete storage or formatting layers.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with stable string form.
//     The 1xxx range belongs to block balance analysis, 2xxx to compiler
//     output interpretation, 3xxx to tooling and I/O.
//   - Message – human oriented text; keep it short and actionable.
//   - Primary span – the canonical source.Span pointing to the issue.
//   - Notes – optional secondary spans/messages for additional context.
//   - Fixes – optional Fix records describing how to address the problem.
//
// # Emitting diagnostics
//
// Phases should use a diag.Reporter to decouple emission from storage. The
// balance analyzer, for example, constructs a ReportBuilder via
// NewReportBuilder (or the helper functions ReportError/ReportWarning/
// ReportInfo) and chains WithNote / WithFix before calling Emit.
//
// When no additional metadata is needed, phases may call Reporter.Report(...)
// directly. For convenience, diag.BagReporter aggregates diagnostics into a
// Bag, which supports sorting, deduplication and merging.
//
// # Consumers
//
//   - internal/diagfmt: renders Diagnostics into pretty/json/short formats.
//   - internal/lsp: converts Diagnostics into editor protocol payloads.
//   - internal/driver: coordinates bag collection per file and transports
//     diagnostic data to CLI commands.
//
// Keep the data model deterministic: any new fields should avoid side effects,
// so the CLI and the editor server can safely serialise diagnostics for
// caching and testing.
package diag
