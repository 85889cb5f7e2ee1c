package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdfkit/graphiso/query"
)

func TestExtract_SimpleSPARQL(t *testing.T) {
	q, err := query.Extract(`SELECT ?s ?p ?o WHERE { ?s ?p ?o . }`)
	require.NoError(t, err)

	assert.Equal(t, query.SPARQL, q.Language)
	assert.Equal(t, []string{"s", "p", "o"}, q.Projection)
	require.Equal(t, 1, q.BGP.Len())
	assert.Empty(t, q.Windows)
	assert.Empty(t, q.Streams)
}

func TestExtract_SelectStar(t *testing.T) {
	q, err := query.Extract(`SELECT * WHERE { ?s <http://example.org/p> "value" . }`)
	require.NoError(t, err)
	assert.True(t, q.IsSelectAll())
}

func TestExtract_MultipleTriplePatterns(t *testing.T) {
	q, err := query.Extract(`
		SELECT ?s ?o WHERE {
			?s <http://example.org/knows> ?x .
			?x <http://example.org/name> "Alice" .
		}
	`)
	require.NoError(t, err)
	assert.Equal(t, 2, q.BGP.Len())
}

func TestExtract_PrefixedIRI(t *testing.T) {
	q, err := query.Extract(`SELECT ?s WHERE { ?s rdf:type foaf:Person . }`)
	require.NoError(t, err)
	require.Equal(t, 1, q.BGP.Len())
	tr := q.BGP.Triples()[0]
	assert.Equal(t, "rdf:type", tr.Predicate.Label())
	assert.Equal(t, "foaf:Person", tr.Object.Label())
}

func TestExtract_LiteralWithLanguageTag(t *testing.T) {
	q, err := query.Extract(`SELECT ?s WHERE { ?s <http://example.org/name> "Alice"@en . }`)
	require.NoError(t, err)
	tr := q.BGP.Triples()[0]
	assert.Equal(t, "Alice", tr.Object.Label())
	assert.Equal(t, "@en", tr.Object.Tag())
}

func TestExtract_LiteralWithDatatype(t *testing.T) {
	q, err := query.Extract(`SELECT ?s WHERE { ?s <http://example.org/age> "42"^^<http://www.w3.org/2001/XMLSchema#integer> . }`)
	require.NoError(t, err)
	tr := q.BGP.Triples()[0]
	assert.Equal(t, "42", tr.Object.Label())
}

func TestExtract_BlankNode(t *testing.T) {
	q, err := query.Extract(`SELECT ?s WHERE { ?s <http://example.org/p> _:b1 . }`)
	require.NoError(t, err)
	tr := q.BGP.Triples()[0]
	assert.Equal(t, "b1", tr.Object.Label())
}

func TestExtract_CommentsStripped(t *testing.T) {
	q, err := query.Extract(`
		# this is a comment
		SELECT ?s WHERE { ?s <http://example.org/p> "v" . } # trailing comment
	`)
	require.NoError(t, err)
	assert.Equal(t, 1, q.BGP.Len())
}

func TestExtract_RSPQLWindow(t *testing.T) {
	text := `SELECT ?s FROM NAMED WINDOW <http://example.org/w> ON <http://example.org/stream> RANGE PT10S STEP PT5S WHERE { ?s <http://example.org/p> ?o . }`
	q, err := query.Extract(text)
	require.NoError(t, err)

	require.Len(t, q.Windows, 1)
	assert.Equal(t, "http://example.org/stream", q.Windows[0].Stream)
	assert.Equal(t, "PT10S", q.Windows[0].Range)
	assert.Equal(t, "PT5S", q.Windows[0].Step)
	assert.Equal(t, []string{"http://example.org/stream"}, q.Streams)
}

func TestExtract_JanusQLWindow(t *testing.T) {
	text := `SELECT ?s FROM JANUS STREAM <http://example.org/stream> OFFSET 5 START 10 END 20 WHERE { ?s <http://example.org/p> ?o . }`
	q, err := query.Extract(text)
	require.NoError(t, err)

	require.Len(t, q.Windows, 1)
	assert.Equal(t, "5", q.Windows[0].Offset)
	assert.Equal(t, "10", q.Windows[0].Start)
	assert.Equal(t, "20", q.Windows[0].End)
}

func TestExtract_UnbalancedBraces(t *testing.T) {
	_, err := query.Extract(`SELECT ?s WHERE { ?s <http://example.org/p> "v" .`)
	require.Error(t, err)
	var perr *query.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, query.CodeUnbalancedBraces, perr.Code)
}

func TestExtract_EmptyBGP(t *testing.T) {
	_, err := query.Extract(`SELECT ?s WHERE { }`)
	require.Error(t, err)
	var perr *query.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, query.CodeEmptyBGP, perr.Code)
}

func TestExtract_MalformedTriple(t *testing.T) {
	_, err := query.Extract(`SELECT ?s WHERE { ?s <http://example.org/p> . }`)
	require.Error(t, err)
	var perr *query.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, query.CodeMalformedTriple, perr.Code)
}

func TestExtract_ErrorIsErrParse(t *testing.T) {
	_, err := query.Extract(`SELECT ?s WHERE { ?s <http://example.org/p> . }`)
	assert.ErrorIs(t, err, query.ErrParse)
}

func TestExtract_VariableRenamingPreservesBGPShape(t *testing.T) {
	q1, err := query.Extract(`SELECT ?s ?p ?o WHERE { ?s ?p ?o . }`)
	require.NoError(t, err)
	q2, err := query.Extract(`SELECT ?x ?y ?z WHERE { ?x ?y ?z . }`)
	require.NoError(t, err)

	assert.Equal(t, len(q1.Projection), len(q2.Projection))
	assert.Equal(t, q1.BGP.Len(), q2.BGP.Len())
}
