package term

import (
	"fmt"

	"golang.org/x/text/unicode/norm"
)

// Kind identifies which of the four term variants a Node holds.
type Kind uint8

const (
	// KindIRI is an absolute or prefixed URI.
	KindIRI Kind = iota
	// KindLiteral is a lexical value, optionally carrying a datatype or language tag.
	KindLiteral
	// KindBlankNode is an existentially-quantified, locally-named RDF node.
	KindBlankNode
	// KindVariable is a query variable (e.g. ?x).
	KindVariable
)

// String returns the canonical lowercase name for k.
func (k Kind) String() string {
	switch k {
	case KindIRI:
		return "iri"
	case KindLiteral:
		return "literal"
	case KindBlankNode:
		return "blank_node"
	case KindVariable:
		return "variable"
	default:
		return "unknown"
	}
}

// Node is a tagged RDF term. The zero Node is not meaningful; construct
// Nodes via [NewIRI], [NewLiteral], [NewBlankNode] or [NewVariable].
//
// Node is a plain immutable value: safe to copy, compare with ==, and share
// across goroutines.
type Node struct {
	kind  Kind
	value string // IRI string, literal lexical form, or local blank/variable label
	tag   string // literal datatype/language tag, verbatim; empty for other kinds
}

// NewIRI returns an IRI term. The IRI string is NFC-normalized.
func NewIRI(iri string) Node {
	return Node{kind: KindIRI, value: normalizeNFC(iri)}
}

// NewLiteral returns a Literal term with an optional datatype/language tag
// (e.g. `^^xsd:integer` or `@en`, captured verbatim as it appeared in the
// source). Both the lexical form and the tag are NFC-normalized.
func NewLiteral(lexical, tag string) Node {
	return Node{kind: KindLiteral, value: normalizeNFC(lexical), tag: normalizeNFC(tag)}
}

// NewBlankNode returns a BlankNode term with the given local label.
// The label is only used to correlate repeated occurrences within one
// graph; it carries no meaning when comparing across graphs.
func NewBlankNode(label string) Node {
	return Node{kind: KindBlankNode, value: label}
}

// NewVariable returns a Variable term with the given name (without the
// leading `?`). Like BlankNode, the name is only meaningful within one
// query.
func NewVariable(name string) Node {
	return Node{kind: KindVariable, value: name}
}

func normalizeNFC(s string) string {
	if norm.NFC.IsNormalString(s) {
		return s
	}
	return norm.NFC.String(s)
}

// Kind reports which variant n holds.
func (n Node) Kind() Kind { return n.kind }

// Label returns the IRI string, literal lexical form, or the blank-node /
// variable local label, depending on Kind.
func (n Node) Label() string { return n.value }

// Tag returns the literal's verbatim datatype/language tag. Empty for
// non-literal kinds or literals without a tag.
func (n Node) Tag() string { return n.tag }

// IsAnonymous reports whether n is a positional placeholder (BlankNode or
// Variable) rather than a constant (IRI or Literal).
func (n Node) IsAnonymous() bool {
	return n.kind == KindBlankNode || n.kind == KindVariable
}

// Equal reports whether n and other denote the same term. For constants
// this is exact string (and tag) equality; for anonymous nodes this
// compares local labels, which is only meaningful when both nodes come from
// the same graph or query — callers comparing across graphs should use the
// grounded signatures produced by package iso instead.
func (n Node) Equal(other Node) bool {
	return n.kind == other.kind && n.value == other.value && n.tag == other.tag
}

// Compare imposes a total, deterministic order over Nodes: IRI < Literal <
// BlankNode < Variable, then by label, then by tag. It does not reflect any
// semantic ordering of RDF terms — it exists solely so callers can produce a
// stable sort key before hashing, per the "avoid accidental non-determinism"
// guidance that anonymous-node signature hashing depends on.
func Compare(a, b Node) int {
	if a.kind != b.kind {
		if a.kind < b.kind {
			return -1
		}
		return 1
	}
	if a.value != b.value {
		if a.value < b.value {
			return -1
		}
		return 1
	}
	if a.tag != b.tag {
		if a.tag < b.tag {
			return -1
		}
		return 1
	}
	return 0
}

// String returns a debug representation; not a serialization format (spec
// Non-goals explicitly exclude canonical serialization).
func (n Node) String() string {
	switch n.kind {
	case KindIRI:
		return fmt.Sprintf("<%s>", n.value)
	case KindLiteral:
		if n.tag != "" {
			return fmt.Sprintf("%q%s", n.value, n.tag)
		}
		return fmt.Sprintf("%q", n.value)
	case KindBlankNode:
		return "_:" + n.value
	case KindVariable:
		return "?" + n.value
	default:
		return "<invalid-node>"
	}
}
