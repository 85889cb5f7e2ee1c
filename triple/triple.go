package triple

import (
	"fmt"

	"github.com/rdfkit/graphiso/term"
)

// Triple is an ordered (subject, predicate, object) statement. No RDF
// well-formedness is imposed: the isomorphism decision procedure is
// agnostic to whether a Literal appears in subject position.
type Triple struct {
	Subject   term.Node
	Predicate term.Node
	Object    term.Node
}

// New returns a Triple with the given subject, predicate and object.
func New(s, p, o term.Node) Triple {
	return Triple{Subject: s, Predicate: p, Object: o}
}

// Equal reports whether t and other have pairwise-equal subject, predicate
// and object.
func (t Triple) Equal(other Triple) bool {
	return t.Subject.Equal(other.Subject) &&
		t.Predicate.Equal(other.Predicate) &&
		t.Object.Equal(other.Object)
}

// HasAnonymous reports whether any position of t is a BlankNode or
// Variable.
func (t Triple) HasAnonymous() bool {
	return t.Subject.IsAnonymous() || t.Predicate.IsAnonymous() || t.Object.IsAnonymous()
}

// String returns a debug representation; not a serialization format.
func (t Triple) String() string {
	return fmt.Sprintf("%s %s %s .", t.Subject, t.Predicate, t.Object)
}
