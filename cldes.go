// Package cldes is the public entry point of the discrete event systems
// library: construct automata, compose them via synchronous product (eager
// or lazy), and synthesize controllability-respecting supervisors.
//
// It re-exports the subpackages' core types the way the teacher's root
// regex.go re-exports meta.Engine — callers normally only import this
// package; automaton/product/supervisor/eventset/sparsebit are reached
// directly only by code that needs their lower-level types.
package cldes

import (
	"github.com/godes/cldes/automaton"
	"github.com/godes/cldes/eventset"
	"github.com/godes/cldes/product"
	"github.com/godes/cldes/supervisor"
)

// Option configures a newly constructed Automaton. It is an alias for
// automaton.Option so callers never need to import the automaton package
// just to pass options to NewAutomaton.
type Option = automaton.Option

// WithMultiplier overrides the BitMultiplier used by the reachability
// engine's fixpoint iteration — the GPU seam described in SPEC_FULL.md §8.
func WithMultiplier(bm automaton.BitMultiplier) Option {
	return automaton.WithMultiplier(bm)
}

// WithDeviceCache toggles the no-op device-cache placeholder described in
// SPEC_FULL.md §8; nothing in this module reads the flag, so it has no
// observable effect, whichever BitMultiplier is in use.
func WithDeviceCache(enabled bool) Option {
	return automaton.WithDeviceCache(enabled)
}

// NewAutomaton builds a deterministic automaton with n states, initial
// state q0, and marked states marked. Event and state ids elsewhere in the
// API are plain ints (automaton.Base's contract); NewAutomaton takes
// uint32 at this boundary since a DES's state/event space is never
// negative and a caller building from, say, a parsed model file will
// typically have unsigned ids on hand.
func NewAutomaton(n, q0 uint32, marked []uint32, opts ...Option) (*automaton.Automaton, error) {
	m := make([]int, len(marked))
	for i, q := range marked {
		m[i] = int(q)
	}
	return automaton.New(int(n), int(q0), m, opts...)
}

// Sync eagerly computes the synchronous product (parallel composition) of
// a and b, returning a concrete automaton.
func Sync(a, b automaton.Base) (*automaton.Automaton, error) {
	return product.New(a, b).ToConcrete()
}

// SyncLazy returns a, b's synchronous product as a lazy proxy that never
// materializes the nA·nB transition table unless ToConcrete/ToConcreteOver
// is called on it.
func SyncLazy(a, b automaton.Base) *product.Product {
	return product.New(a, b)
}

// SupC synthesizes the monolithic supervisor for plant and spec relative
// to the uncontrollable event set uncontrollable, returning a trimmed
// automaton realizing the supremal controllable sublanguage of
// L(spec) ∩ L(plant).
func SupC(plant, spec automaton.Base, uncontrollable eventset.Set) (*automaton.Automaton, error) {
	return supervisor.Synth(plant, spec, uncontrollable)
}
