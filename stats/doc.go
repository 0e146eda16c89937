// Package stats builds the ring-size (mixin) histograms reported by the
// attack commands.
//
// Rings of size l land in bucket l-1 for l up to MaxBucket; anything
// larger lands in the overflow bucket. Bucket i therefore counts the
// rings with i mixins, matching how CryptoNote literature reports
// anonymity sets.
package stats
