package triple_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdfkit/graphiso/term"
	"github.com/rdfkit/graphiso/triple"
)

func TestNewGraph_Dedup(t *testing.T) {
	a := term.NewBlankNode("a")
	knows := term.NewIRI("http://example.org/knows")
	b := term.NewBlankNode("b")

	tr := triple.New(a, knows, b)
	g := triple.NewGraph([]triple.Triple{tr, tr, tr})

	assert.Equal(t, 1, g.Len())
}

func TestNewGraph_EmptyGraph(t *testing.T) {
	g := triple.NewGraph(nil)
	assert.Equal(t, 0, g.Len())
	assert.Empty(t, g.AnonymousNodes())
	assert.Empty(t, g.ConstantTriples())
}

func TestConstantTriples(t *testing.T) {
	alice := term.NewIRI("http://example.org/alice")
	knows := term.NewIRI("http://example.org/knows")
	bob := term.NewIRI("http://example.org/bob")
	blank := term.NewBlankNode("x")

	g := triple.NewGraph([]triple.Triple{
		triple.New(alice, knows, bob),
		triple.New(alice, knows, blank),
	})

	require.Len(t, g.ConstantTriples(), 1)
	assert.True(t, g.ConstantTriples()[0].Equal(triple.New(alice, knows, bob)))
}

func TestIncident(t *testing.T) {
	a := term.NewBlankNode("a")
	b := term.NewBlankNode("b")
	knows := term.NewIRI("http://example.org/knows")
	name := term.NewIRI("http://example.org/name")
	alice := term.NewLiteral("Alice", "")

	g := triple.NewGraph([]triple.Triple{
		triple.New(a, knows, b),
		triple.New(a, name, alice),
	})

	incA := g.Incident(a)
	require.Len(t, incA, 2)

	incB := g.Incident(b)
	require.Len(t, incB, 1)
	assert.Equal(t, triple.RoleObject, incB[0].Role)
}

func TestAnonymousNodes_Distinct(t *testing.T) {
	a := term.NewBlankNode("bag")
	typ := term.NewIRI("rdf:type")
	bag := term.NewIRI("rdf:Bag")
	item1 := term.NewIRI("http://example.org/item1")
	rdf1 := term.NewIRI("rdf:_1")

	g := triple.NewGraph([]triple.Triple{
		triple.New(a, typ, bag),
		triple.New(a, rdf1, item1),
	})

	assert.Len(t, g.AnonymousNodes(), 1)
}

func TestDeterministicOrdering(t *testing.T) {
	a := term.NewBlankNode("a")
	b := term.NewBlankNode("b")
	p := term.NewIRI("p")

	g1 := triple.NewGraph([]triple.Triple{triple.New(b, p, a), triple.New(a, p, b)})
	g2 := triple.NewGraph([]triple.Triple{triple.New(a, p, b), triple.New(b, p, a)})

	assert.Equal(t, g1.Triples(), g2.Triples(), "construction order must not affect the stored triple order")
}
