package solver

import (
	"errors"

	"github.com/katalvlaran/packetforge/code"
)

var (
	// ErrNegativeMaxSteps is returned when Options.MaxSteps < 0.
	ErrNegativeMaxSteps = errors.New("solver: MaxSteps must be non-negative")

	// ErrNegativeRestartDepth is returned when Options.RestartDepth < 0.
	ErrNegativeRestartDepth = errors.New("solver: RestartDepth must be non-negative")
)

// Documented defaults - single source of truth for DefaultOptions.
const (
	// DefaultMaxSteps caps the total number of descent steps per solve.
	// Packets are small (tens of slots), so this is generous headroom.
	DefaultMaxSteps = 10_000

	// DefaultRestartDepth is how many consecutive descent steps are
	// attempted from one shuffle before abandoning it for a fresh one.
	DefaultRestartDepth = 5
)

// Options configures one solve.
type Options struct {
	// MaxSteps is the hard ceiling on descent steps across all restarts.
	// 0 means DefaultMaxSteps; negative is rejected. The ceiling is what
	// makes the search terminate on unsatisfiable constraint sets.
	MaxSteps int

	// RestartDepth bounds consecutive descent steps from one starting
	// shuffle before a uniform reshuffle. 0 reshuffles after every step.
	RestartDepth int

	// Seed feeds the solve's RNG. 0 selects a fixed default stream, so
	// the zero value is still deterministic (never time-based).
	Seed int64
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		MaxSteps:     DefaultMaxSteps,
		RestartDepth: DefaultRestartDepth,
		Seed:         0,
	}
}

// validate rejects nonsensical option values with strict sentinels.
func (o Options) validate() error {
	if o.MaxSteps < 0 {
		return ErrNegativeMaxSteps
	}
	if o.RestartDepth < 0 {
		return ErrNegativeRestartDepth
	}

	return nil
}

// Result is the outcome of one solve.
type Result struct {
	// Arrangement is the best permutation of the input found during the
	// search — a zero-violation arrangement when the solve converged.
	Arrangement []code.Code

	// Violations is Arrangement's residual violation count (0 on success).
	Violations int

	// Steps is the number of descent steps consumed.
	Steps int

	// Restarts is the number of uniform reshuffles performed after the
	// initial one.
	Restarts int
}
