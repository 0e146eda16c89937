// Package txgraph models the bipartite graph of a CryptoNote-style
// transaction set: key images on one side, ring-member public keys on the
// other. Identifiers are dense non-negative integers usable directly as
// array offsets.
//
// The package provides:
//
//   - EdgeList: the raw edge file contents as parallel index slices,
//     order and duplicates preserved.
//   - Graph: per-key-image ring sets plus the pk→ki reverse map. Rings
//     shrink monotonically as attacks remove impossible edges; the reverse
//     map is an immutable upper bound and must be filtered against the
//     live rings when walked.
//   - Matrix: CSC+CSR views of the same relation for the algorithms that
//     need O(deg) neighbor iteration on either side.
//   - ClosedSet: a balanced (K, P) pair whose application removes every
//     member of P from rings outside K.
//
// File formats are plain UTF-8 text with single-space-separated decimal
// integers; see ReadEdges, ReadRings and Graph.WriteRings for the exact
// line contracts.
package txgraph
