// Package dmdec computes the Dulmage–Mendelsohn fine decomposition of
// the transaction graph, the one-shot exact attack.
//
// A maximum matching splits the public keys into matched and unmatched.
// Alternating breadth-first search from the unmatched ones reaches
// every row and column with a spare alternative; what it cannot reach
// is a perfectly matched square block. Strongly connected components of
// the matching-induced digraph on that block are its finest partition
// into closed sets, equivalent to running the clustering attack to its
// ultimate fixpoint but in near-linear time.
package dmdec
