package automaton

import "github.com/godes/cldes/sparsebit"

// BitMultiplier performs the boolean SpGEMM step y = M·x the reachability
// engine repeats to fixpoint. It is the seam the original C++ implementation
// reserved for an OpenCL-backed sparse multiply (disabled in that codebase's
// shipped build) — here expressed as a plain Go interface with a CPU default
// so a GPU-backed implementation can be substituted without touching
// Automaton itself.
type BitMultiplier interface {
	// MultiplyBool computes y = m·x over the boolean semiring and returns y.
	MultiplyBool(m *sparsebit.BitMatrix, x *sparsebit.BitVector) *sparsebit.BitVector
}

// cpuMultiplier is the default BitMultiplier: it delegates straight to
// BitMatrix.SpGEMMBool, the same single-threaded sparse kernel the teacher's
// own sparse package uses for its row-scan operations.
type cpuMultiplier struct{}

func (cpuMultiplier) MultiplyBool(m *sparsebit.BitMatrix, x *sparsebit.BitVector) *sparsebit.BitVector {
	return m.SpGEMMBool(x)
}

// DefaultMultiplier is the CPU BitMultiplier every Automaton uses unless a
// Config overrides it with WithMultiplier.
var DefaultMultiplier BitMultiplier = cpuMultiplier{}

// Config holds Automaton's ambient, rarely-changed construction options,
// following the teacher's functional-options Config/Option pair (see
// dfa/lazy.Config in the original regex engine).
type Config struct {
	multiplier BitMultiplier

	// deviceCacheEnabled is a no-op placeholder for the GPU seam: no
	// device-backed BitMultiplier ships in this module, so enabling it
	// changes nothing observable yet. It exists so a future GPU build can
	// gate device-memory caching behind the same Option without breaking
	// this signature.
	deviceCacheEnabled bool
}

// Option configures an Automaton at construction time.
type Option func(*Config)

// DefaultConfig returns the Config used when no Option overrides it.
func DefaultConfig() Config {
	return Config{multiplier: DefaultMultiplier}
}

// WithMultiplier overrides the BitMultiplier used by the reachability
// engine, the seam a GPU-backed implementation would plug into.
func WithMultiplier(bm BitMultiplier) Option {
	return func(c *Config) { c.multiplier = bm }
}

// WithDeviceCache toggles deviceCacheEnabled. Nothing in this module reads
// the flag, so it has no effect on any result, whichever BitMultiplier is
// in use.
func WithDeviceCache(enabled bool) Option {
	return func(c *Config) { c.deviceCacheEnabled = enabled }
}
