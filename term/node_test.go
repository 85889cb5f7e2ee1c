package term_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rdfkit/graphiso/term"
)

func TestIsAnonymous(t *testing.T) {
	tests := []struct {
		name string
		node term.Node
		want bool
	}{
		{"iri", term.NewIRI("http://example.org/s"), false},
		{"literal", term.NewLiteral("hello", ""), false},
		{"blank node", term.NewBlankNode("b1"), true},
		{"variable", term.NewVariable("x"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.node.IsAnonymous())
		})
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b term.Node
		want bool
	}{
		{"same iri", term.NewIRI("http://a"), term.NewIRI("http://a"), true},
		{"different iri", term.NewIRI("http://a"), term.NewIRI("http://b"), false},
		{"same literal and tag", term.NewLiteral("v", "@en"), term.NewLiteral("v", "@en"), true},
		{"same lexical different tag", term.NewLiteral("v", "@en"), term.NewLiteral("v", "@fr"), false},
		{"blank nodes same label", term.NewBlankNode("x"), term.NewBlankNode("x"), true},
		{"blank nodes different label", term.NewBlankNode("x"), term.NewBlankNode("y"), false},
		{"iri vs literal never equal", term.NewIRI("v"), term.NewLiteral("v", ""), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
		})
	}
}

func TestCompare_TotalOrder(t *testing.T) {
	nodes := []term.Node{
		term.NewIRI("http://a"),
		term.NewIRI("http://b"),
		term.NewLiteral("x", ""),
		term.NewBlankNode("b1"),
		term.NewVariable("v1"),
	}
	for i := range nodes {
		for j := range nodes {
			got := term.Compare(nodes[i], nodes[j])
			want := term.Compare(nodes[j], nodes[i])
			if i == j {
				assert.Equal(t, 0, got)
				continue
			}
			assert.NotEqual(t, 0, got, "distinct nodes must not compare equal")
			assert.Equal(t, -got, want, "Compare must be antisymmetric")
		}
	}
}

func TestCompare_KindOrdering(t *testing.T) {
	iri := term.NewIRI("z")
	lit := term.NewLiteral("a", "")
	blank := term.NewBlankNode("a")
	v := term.NewVariable("a")

	assert.Negative(t, term.Compare(iri, lit))
	assert.Negative(t, term.Compare(lit, blank))
	assert.Negative(t, term.Compare(blank, v))
}

func TestNFCNormalization(t *testing.T) {
	// precomposed uses U+00E9 (LATIN SMALL LETTER E WITH ACUTE); decomposed
	// spells the same glyph as U+0065 (e) followed by U+0301 (combining
	// acute accent). The two byte sequences differ but must normalize to
	// the same NFC form.
	precomposed := "caf\u00e9"
	decomposed := "cafe\u0301"
	assert.NotEqual(t, precomposed, decomposed, "test fixture must start from distinct byte sequences")

	a := term.NewLiteral(precomposed, "")
	b := term.NewLiteral(decomposed, "")
	assert.True(t, a.Equal(b), "literals differing only in Unicode normalization form must compare equal")

	ai := term.NewIRI("http://example.org/" + precomposed)
	bi := term.NewIRI("http://example.org/" + decomposed)
	assert.True(t, ai.Equal(bi))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "iri", term.KindIRI.String())
	assert.Equal(t, "literal", term.KindLiteral.String())
	assert.Equal(t, "blank_node", term.KindBlankNode.String())
	assert.Equal(t, "variable", term.KindVariable.String())
}
