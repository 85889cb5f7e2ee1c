// Package term defines the RDF term model shared by graphs and queries.
//
// A [Node] is a tagged value with four variants: [IRI] and [Literal] are
// constants (compared by exact string identity); [BlankNode] and [Variable]
// are anonymous positional placeholders whose local label only matters for
// identifying repeated occurrences within a single graph or query — it
// carries no meaning across graphs. [Compare] gives Nodes a total,
// deterministic order so callers (notably package triple) can sort before
// hashing instead of relying on map iteration order.
//
// Literal lexical forms and IRI strings are normalized to Unicode NFC at
// construction time, so two terms that differ only in composed/decomposed
// Unicode form compare equal.
package term
