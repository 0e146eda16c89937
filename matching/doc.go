// Package matching implements maximum bipartite matching on the sparse
// transaction graph, driven column-by-column (key image by key image).
//
// The search is a depth-first hunt for augmenting paths with two
// classic optimizations:
//
//   - a persistent per-column cursor so rows already proven matched are
//     never rescanned across searches (Gustavson / cs_maxtrans), and
//   - per-search column stamps so one augmenting search never revisits
//     a column.
//
// Worst case O(V·E); near-linear on CryptoNote transaction graphs,
// where almost every key image column is matchable.
package matching
