// Package iso decides graph isomorphism via iterative signature hashing
// with grounding, the procedure originally due to Carroll.
//
// [Label] assigns every anonymous node (BlankNode or Variable) of a graph a
// structural signature by repeatedly hashing each node's multiset of
// incident triples until a fixed point is reached: either every node has a
// signature unique among all anonymous nodes ("grounded"), or a genuine
// symmetry leaves two or more nodes tied on the same signature.
//
// [Decide] uses Label to compare two graphs: it short-circuits on size or
// constant-triple mismatches, labels each graph independently, and compares
// their grounded-triple multisets. When ties remain in either labeling,
// Decide resolves them by trial: temporarily breaking one tie with a
// distinguishing nonce and re-running refinement, backtracking on failure,
// bounded by [Options.MaxBranches].
package iso
