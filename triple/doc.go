// Package triple represents RDF graphs as deduplicated multisets of
// [Triple] values.
//
// A [Graph] is an immutable value built once via [NewGraph]: duplicates
// present in the input are removed, and the constant-only triples and the
// anonymous nodes (BlankNode/Variable) are indexed so that package iso's
// decider can cheaply short-circuit on graphs that cannot possibly be
// isomorphic before running the labeler.
package triple
