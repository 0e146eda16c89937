// Package cascade implements the zero-mixin chain-reaction attack.
//
// Every ring of size one is trivially traced: its sole public key is
// the true spend, so that key cannot be the spend of any other ring and
// is removed from all of them. Each removal may shrink another ring to
// size one, triggering the next link of the chain. Run iterates the
// sweep until the traceable count stops changing or the iteration
// budget is exhausted.
package cascade
