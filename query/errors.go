package query

import (
	"errors"
	"fmt"
)

// ErrParse is the parent sentinel for all BGP-extraction failures (spec
// §7). Use errors.Is(err, ErrParse) to detect any extraction failure;
// use errors.As with *ParseError to recover the specific Code.
var ErrParse = errors.New("query: parse error")

// Code identifies the specific kind of parse failure (spec §4.3).
type Code uint8

const (
	// CodeUnbalancedBraces indicates a WHERE clause whose `{`/`}` do not balance.
	CodeUnbalancedBraces Code = iota
	// CodeEmptyBGP indicates a WHERE clause with no triple patterns.
	CodeEmptyBGP
	// CodeMalformedTriple indicates a triple pattern that did not parse into
	// exactly three tokens.
	CodeMalformedTriple
	// CodeUnknownWindowClause indicates an RSP-QL/JanusQL window clause that
	// did not match the recognized grammar.
	CodeUnknownWindowClause
)

// String returns the canonical lowercase name for c.
func (c Code) String() string {
	switch c {
	case CodeUnbalancedBraces:
		return "unbalanced_braces"
	case CodeEmptyBGP:
		return "empty_bgp"
	case CodeMalformedTriple:
		return "malformed_triple"
	case CodeUnknownWindowClause:
		return "unknown_window_clause"
	default:
		return "unknown"
	}
}

// ParseError wraps ErrParse with the specific Code and a human-readable
// detail, mirroring the teacher's instance.Err* sentinel+wrap convention.
type ParseError struct {
	Code   Code
	Detail string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrParse, e.Code, e.Detail)
}

func (e *ParseError) Unwrap() error { return ErrParse }

func newParseError(code Code, detail string) *ParseError {
	return &ParseError{Code: code, Detail: detail}
}

// ErrDetectLanguage is returned by [DetectLanguage] when no supported
// language's distinguishing keywords are present (spec §4.4 step 4).
var ErrDetectLanguage = errors.New("query: could not detect language")
