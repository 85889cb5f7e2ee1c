// Package query dissects the textual surface syntax of SPARQL, RSP-QL and
// JanusQL queries into a structured [Query]: language, projection list,
// Basic Graph Pattern (as a [triple.Graph] whose anonymous nodes are
// Variables), stream IRIs, and window descriptors.
//
// [Extract] is not a full parser. It recovers only the surface
// conventions named in the query-equivalence specification this package
// implements: SELECT/WHERE, RSP-QL's FROM NAMED WINDOW ... RANGE/STEP, and
// JanusQL's FROM JANUS STREAM ... OFFSET/START/END. Prefix/IRI resolution
// is a caller responsibility — a prefixed token like `rdf:type` is stored
// verbatim as an IRI node's string, distinct from its expanded form, unless
// the caller pre-expands prefixes before calling Extract.
//
// [DetectLanguage] classifies a query string without parsing it, using the
// same priority order Extract uses internally: JanusQL, then RSP-QL, then
// SPARQL.
package query
