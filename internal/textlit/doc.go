// Package textlit converts quoted literal tokens extracted from query text
// into Go strings.
//
// SPARQL, RSP-QL, and JanusQL all permit both double-quoted ("literal") and
// single-quoted ('literal') RDF literal syntax, with standard escape
// sequences (\n, \t, \uXXXX, etc.). The BGP extractor in package query pulls
// these tokens out with a regular expression; this package turns the raw
// token into the unescaped lexical form via strconv.Unquote.
//
// # Internal Package
//
// This package is internal to graphiso. Its API may change without notice
// between versions. External consumers should not import this package.
//
// # Main Functions
//
//   - ConvertString: Converts a quoted literal token (double or single
//     quoted) to its unescaped Go string form. Returns the original string
//     alongside an error for invalid escapes so callers can surface a
//     parse error instead of silently accepting bad escapes.
package textlit
