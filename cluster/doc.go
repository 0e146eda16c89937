// Package cluster implements the closed-set attack of Yu et al.
// (Financial Cryptography 2019) via their clustering algorithm.
//
// A closed set is a group of key images whose rings collectively cover
// exactly as many public keys as there are key images. Inside such a
// group every public key is spent by some member, so none of them can
// be the spend of an outside ring; removing them from outside rings
// shrinks anonymity sets and can trigger further discoveries.
//
// The engine greedily grows candidate clusters from each unresolved
// key image, decomposes every balanced cluster into its minimal closed
// sets with a maximum matching plus strongly connected components, and
// repeats until a full pass produces no reduction.
package cluster
