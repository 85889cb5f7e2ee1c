// Package graphiso decides structural equivalence of RDF graphs and of the
// semantic queries written over them.
//
// Two graphs are equivalent when one can be obtained from the other by a
// bijective renaming of their anonymous nodes (blank nodes) while preserving
// every edge. Two queries are equivalent when their Basic Graph Patterns are
// graph-isomorphic and their non-BGP parameters (projection arity, stream
// sources, window bounds) match under compatible renamings.
//
// # Architecture Overview
//
// The module is organized bottom-up:
//
//	Foundation tier (no internal dependencies):
//	  - term: the tagged node/term model (IRI, Literal, BlankNode, Variable)
//	  - triple: deduplicated multisets of triples ("graphs")
//
//	Core tier:
//	  - iso: the canonical labeler and isomorphism decider (the hard part)
//	  - query: the regex-based BGP extractor and language detector
//
//	Façade tier:
//	  - equiv: composes iso + query into a single equivalence decision
//
// # Entry points
//
// Graph isomorphism:
//
//	import "github.com/rdfkit/graphiso/iso"
//
//	ok, err := iso.Decide(ctx, g1, g2)
//
// Query equivalence:
//
//	import "github.com/rdfkit/graphiso/equiv"
//
//	ok, err := equiv.IsQueryIsomorphic(ctx, q1Text, q2Text)
//	report, err := equiv.CompareQueries(ctx, q1Text, q2Text)
//
// # Subpackages
//
//   - [github.com/rdfkit/graphiso/term]: node/term model
//   - [github.com/rdfkit/graphiso/triple]: triple sets ("graphs")
//   - [github.com/rdfkit/graphiso/iso]: canonical labeler and isomorphism decider
//   - [github.com/rdfkit/graphiso/query]: BGP extractor and language detector
//   - [github.com/rdfkit/graphiso/equiv]: query equivalence façade
//
// # Non-goals
//
// This module does not serialize graphs for storage, compute the bijection
// witness (only its existence is decided), handle RDF-star/quoted triples or
// named graphs/quads as first-class citizens, perform reasoning or
// inference, parse the full SPARQL grammar, resolve IRI prefixes, execute
// queries, or provide a CLI front-end. See SPEC_FULL.md for the full
// requirements this module implements.
package graphiso
