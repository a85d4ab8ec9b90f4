package costtable

import (
	"fmt"

	"github.com/leastfixed/lambdavm/grid"
)

// Option configures Build via functional arguments. An invalid Option
// (e.g. a negative MaxStages) is recorded internally and surfaced as
// ErrOptionViolation when Build is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize Build's traversal.
type Options struct {
	// OnExpand is called whenever a cell is newly assigned a cost, with
	// the frontier cell it was reached from, the cell itself, and the
	// stage number it was assigned.
	OnExpand func(from, to grid.Coord, stage int)

	// MaxStages, if > 0, stops the search after that many stages even if
	// the frontier has not yet been exhausted. A value of 0 explicitly
	// disables any stage limit.
	MaxStages int

	err error
}

// DefaultOptions returns Options with a no-op hook and no stage limit.
func DefaultOptions() Options {
	return Options{
		OnExpand:  func(grid.Coord, grid.Coord, int) {},
		MaxStages: 0,
	}
}

// WithOnExpand registers a callback run each time a cell is newly costed.
func WithOnExpand(fn func(from, to grid.Coord, stage int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithMaxStages bounds the number of BFS stages performed.
//
//	n > 0: stop after stage n
//	n == 0: explicit no limit
//	n < 0: invalid option -> ErrOptionViolation
func WithMaxStages(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxStages cannot be negative (%d)", ErrOptionViolation, n)
		default:
			o.MaxStages = n
		}
	}
}
