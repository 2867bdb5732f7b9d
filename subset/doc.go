// Package subset implements the fixed-cardinality site selections that the
// search strategies evolve: a bitstring over the L candidate sites with
// exactly M bits set.
//
// The bitstring is backed by go-bitfield's Bitlist, so membership tests and
// population-wide operations stay cheap even for large site pools. All
// variation operators preserve cardinality under construction rather than
// repairing after the fact: Crossover draws the child from the parents'
// union, Mutate swaps one active site for one inactive site.
//
// Operations that accept a *rand.Rand are deterministic with respect to it;
// none of them consult any other randomness source.
package subset
