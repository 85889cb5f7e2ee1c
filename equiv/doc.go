// Package equiv decides structural equivalence of two query strings by
// composing package query (language detection and BGP extraction) with
// package iso (graph isomorphism).
//
// Two queries are equivalent when they are written in the same language,
// their non-BGP parameters match (projection arity, stream IRIs, window
// bounds compared as literal strings — no semantic duration normalization),
// and their Basic Graph Patterns are isomorphic.
package equiv
