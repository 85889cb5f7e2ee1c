// Package trace provides optional debug logging helpers for the graphiso
// library.
//
// This package is an internal developer-observability utility, distinct
// from the error returns iso and query use to report genuine failures.
//
// # Design Principles
//
//   - Near-zero cost when disabled: when the logger is nil, overhead is a
//     single nil check. The Lazy variants guarantee no allocation from
//     attribute construction when disabled.
//   - Stdlib only: built on [log/slog], no extra dependency.
//   - Logger injection: loggers are passed via functional options at API
//     boundaries ([iso.WithLogger], [query.WithLogger]), never read from
//     globals or the environment. Errors are returned to callers
//     unchanged; logging covers operational progress (e.g. labeler
//     refinement rounds), and [Op.End] records an operation's error as an
//     "error" attribute of its end record.
//
// # Usage
//
//   - [Begin]/[Op.End]: operation boundaries, with automatic duration
//     measurement.
//   - [Debug], [Info]: simple, pre-computed attributes.
//   - [DebugLazy], [InfoLazy]: computed attributes, skipped entirely when
//     logging is disabled.
package trace
