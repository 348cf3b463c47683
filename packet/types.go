package packet

import (
	"errors"

	"github.com/katalvlaran/packetforge/solver"
)

// ErrNegativeOffset is returned when Options.Offset < 0.
var ErrNegativeOffset = errors.New("packet: Offset must be non-negative")

// DefaultOffset is the column at which solved codes are spliced into a
// marked row: column 0 holds the marker, column 1 stays host metadata.
const DefaultOffset = 2

// Options configures one Fill run.
type Options struct {
	// Offset is the first column written by the splice.
	Offset int

	// Solver configures every per-row solve. Solver.Seed is the base seed;
	// each row derives its own independent stream from it.
	Solver solver.Options
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Offset: DefaultOffset,
		Solver: solver.DefaultOptions(),
	}
}

// Report describes one generated template.
type Report struct {
	// Row is the table index the template was written to.
	Row int

	// Violations is the residual violation count of the spliced
	// arrangement (0 when the row's solve converged).
	Violations int

	// Steps is the number of descent steps the row's solve consumed.
	Steps int
}
