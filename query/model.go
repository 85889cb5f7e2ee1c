package query

import (
	"github.com/rdfkit/graphiso/triple"
)

// Language identifies which of the three supported surface syntaxes a query
// string was written in (spec §3, §4.4).
type Language uint8

const (
	// SPARQL is the W3C RDF query language.
	SPARQL Language = iota
	// RSPQL is a streaming extension of SPARQL with RANGE/STEP windows.
	RSPQL
	// JanusQL is a temporal query variant with OFFSET/START/END windows.
	JanusQL
)

// String returns the canonical name for l.
func (l Language) String() string {
	switch l {
	case SPARQL:
		return "SPARQL"
	case RSPQL:
		return "RSP-QL"
	case JanusQL:
		return "JanusQL"
	default:
		return "unknown"
	}
}

// Window describes one stream window clause. For RSP-QL, Start/End are
// empty and Range/Step carry the verbatim duration tokens; for JanusQL,
// Range/Step are empty and Offset/Start/End carry the verbatim tokens
// (spec §3 "windows").
type Window struct {
	Stream string
	Range  string
	Step   string
	Offset string
	Start  string
	End    string
}

// Query is the record a text string is dissected into by [Extract] (spec
// §3 "Query model"). It is an immutable value object: nothing in this
// package mutates a Query after it is returned.
type Query struct {
	Language   Language
	Projection []string // ordered variable names, or ["*"] for SELECT *
	BGP        *triple.Graph
	Streams    []string
	Windows    []Window
}

// IsSelectAll reports whether the projection is `SELECT *` rather than an
// explicit variable list.
func (q Query) IsSelectAll() bool {
	return len(q.Projection) == 1 && q.Projection[0] == "*"
}
