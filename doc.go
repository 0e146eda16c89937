// Package ringtrace implements deanonymization attacks against
// CryptoNote-style ring-signature transaction graphs.
//
// 🚀 What is ringtrace?
//
//	Three progressively stronger attacks over one bipartite data model
//	(key images × ring-member public keys):
//
//	  • cascade — the zero-mixin chain reaction: singleton rings are
//	    consumed and their keys stripped from every other ring, to a
//	    fixpoint
//	  • cluster — the closed set attack of Yu et al. (FC 2019): balanced
//	    clusters are grown greedily, split into minimal closed sets via
//	    maximum matching + SCC, and used to shrink outside rings
//	  • dmdec — the exact Dulmage–Mendelsohn fine decomposition: one
//	    maximum matching, one alternating BFS, one SCC pass — the
//	    clustering fixpoint in near-linear time
//
// Every removed ring member is provably impossible: a perfect matching
// of key images to distinct public keys survives every reduction.
//
// Under the hood, the packages layer cleanly:
//
//	txgraph/  — edge and ring file I/O, ring sets, pk→ki map, CSC+CSR views
//	matching/ — maximum bipartite matching (column-driven augmenting DFS)
//	scc/      — deterministic iterative Tarjan
//	cascade/, cluster/, dmdec/ — the attacks
//	stats/    — mixin histograms for the reports
//	cmd/ringtrace — the CLI: cascade, cluster, dmdec, stats-cla, stats-dm
//
// Inputs are plain text: an edge file (one "ki pk" pair per line) or a
// ring file (one ring per key image). Outputs are reduced ring files in
// which every singleton ring is a traced spend.
//
//	go get github.com/katalvlaran/ringtrace
package ringtrace
