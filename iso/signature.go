package iso

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/rdfkit/graphiso/term"
	"github.com/rdfkit/graphiso/triple"
)

// Signature is a structural digest assigned to an anonymous node by the
// refinement procedure. The zero Signature is the [sentinel] start value;
// [constantSignature] and the refinement hashes yield 0 only by an xxhash
// collision, which is vanishingly unlikely in practice, and the procedure
// does not depend on 0 being reserved.
type Signature uint64

// sentinel is the signature every anonymous node starts with, before the
// first refinement round (spec §4.1 step 2).
const sentinel Signature = 0

// constantSignature hashes a constant (IRI or Literal) node's identity. Two
// equal constants always hash to the same value; this is the "ground" a
// refinement round's tuples are built from.
func constantSignature(n term.Node) Signature {
	h := xxhash.New()
	_, _ = h.WriteString(n.Kind().String())
	_, _ = h.WriteString("\x00")
	_, _ = h.WriteString(n.Label())
	_, _ = h.WriteString("\x00")
	_, _ = h.WriteString(n.Tag())
	return Signature(h.Sum64())
}

// tupleHash computes a position-sensitive hash of one incident triple, as
// spec §9 prescribes: H(role, sig_s, sig_p, sig_o). It is deliberately not
// commutative over (s,p,o) — position carries meaning — so commutativity
// across a node's incident triples must come from the caller folding the
// per-tuple hashes together (see combineIncident).
func tupleHash(role triple.Role, sigS, sigP, sigO Signature) uint64 {
	var buf [25]byte
	buf[0] = byte(role)
	binary.LittleEndian.PutUint64(buf[1:9], uint64(sigS))
	binary.LittleEndian.PutUint64(buf[9:17], uint64(sigP))
	binary.LittleEndian.PutUint64(buf[17:25], uint64(sigO))
	return xxhash.Sum64(buf[:])
}

// combineIncident folds a node's per-tuple incident hashes into one
// signature, commutatively (order of tuples must not matter — the incident
// set is unordered) via a sum of squares, then mixes in the node's
// previous-round signature with a second xxhash pass so round history still
// influences the final label (spec §9 "Hash commutativity"). Sum-of-squares
// is used instead of a plain XOR fold because XOR cancels pairs of equal
// tuple hashes to zero — exactly the case of parallel edges to two
// currently-indistinguishable neighbors — which would silently erase a
// multi-edge from the signature rather than reinforcing it.
func combineIncident(prev Signature, tupleHashes []uint64) Signature {
	var acc uint64
	for _, h := range tupleHashes {
		acc += h * h
	}
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[0:8], uint64(prev))
	binary.LittleEndian.PutUint64(buf[8:16], acc)
	return Signature(xxhash.Sum64(buf[:]))
}

// groundedNonce mixes a Signature with a deterministic nonce derived from a
// trial-branching attempt index (spec §4.1 step 6: "mixed with a fixed
// nonce"). The nonce must be deterministic — not random — so that retrying
// the same branch on the same input reproduces the same distinguishing
// signature; see SPEC_FULL.md for why this rules out a random-UUID source.
func groundedNonce(sig Signature, attempt int) Signature {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[0:8], uint64(sig))
	binary.LittleEndian.PutUint64(buf[8:16], uint64(attempt)+1)
	return Signature(xxhash.Sum64(buf[:]))
}
