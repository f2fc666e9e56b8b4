// Package partition defines core types, options and sentinel errors
// for balanced team partitioning.
package partition

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/sirupsen/logrus"
)

// Strength levels supported by the solver.
const (
	MinLevel = 1
	MaxLevel = 5

	// Levels is the number of distinct strength levels.
	Levels = MaxLevel - MinLevel + 1
)

// NoCost is the cost reported for an infeasible instance.
const NoCost int64 = math.MaxInt64

// Sentinel errors returned by the partition package.
var (
	// ErrBadShape indicates a non-positive group count or group size.
	ErrBadShape = errors.New("partition: group count and group size must be positive")

	// ErrSizeMismatch indicates len(values) != m*k.
	ErrSizeMismatch = errors.New("partition: number of teams must equal groups*size")

	// ErrLevelOutOfRange indicates a strength outside [MinLevel, MaxLevel].
	ErrLevelOutOfRange = errors.New("partition: strength out of supported range")

	// ErrStateBudget indicates the search exceeded Options.MaxStates.
	ErrStateBudget = errors.New("partition: state budget exceeded")

	// ErrStateSpaceOverflow indicates the state-space bound does not fit in 64 bits.
	ErrStateSpaceOverflow = errors.New("partition: state space too large to encode")

	// ErrTooLarge indicates an instance too big for exhaustive enumeration.
	ErrTooLarge = errors.New("partition: instance too large for exhaustive search")

	// ErrInvalidPartition indicates groups that do not partition 1..n into m groups of k.
	ErrInvalidPartition = errors.New("partition: groups do not form a valid partition")

	// ErrInconsistentPath signals a reconstruction that violates the table invariants.
	// It is only ever raised through a panic.
	ErrInconsistentPath = errors.New("partition: inconsistent reconstruction path")
)

// Team is a single roster entry. Index is the 0-based input position.
type Team struct {
	Index    int
	Name     string
	Strength int
}

// ID returns the 1-based identifier used in Result.Groups.
func (t Team) ID() int { return t.Index + 1 }

// String returns the team name, or its ID when unnamed.
func (t Team) String() string {
	if t.Name == "" {
		return fmt.Sprintf("#%d", t.ID())
	}

	return t.Name
}

// Decision is one atomic step of an assignment: which team was placed next
// (0-based) and whether that placement closed the open group.
type Decision struct {
	Team   int
	Closed bool
}

// Result holds the outcome of Solve.
type Result struct {
	// Groups lists m groups of k 1-based team IDs, each in assignment order.
	// Nil when Feasible is false.
	Groups [][]int

	// Cost is Σ |sum(group)·M − Total|, or NoCost when Feasible is false.
	Cost int64

	// Feasible is false when no complete assignment exists.
	Feasible bool

	M, K  int // group count and size
	Total int // sum of all strengths

	// States is the number of DP states materialized across all layers.
	States int
}

// Average returns Cost/M, the mean per-group imbalance.
// It returns +Inf for infeasible results.
func (r Result) Average() float64 {
	if !r.Feasible || r.M == 0 {
		return math.Inf(1)
	}

	return float64(r.Cost) / float64(r.M)
}

// TieBreak selects which predecessor survives when two paths reach
// the same state with equal cost.
type TieBreak int

const (
	// KeepFirst keeps the first path discovered (strict < replaces).
	KeepFirst TieBreak = iota

	// KeepLast lets a later equal-cost path replace the stored one (<= replaces).
	KeepLast
)

// String implements fmt.Stringer.
func (tb TieBreak) String() string {
	switch tb {
	case KeepFirst:
		return "first"
	case KeepLast:
		return "last"
	}

	return "unknown"
}

// ParseTieBreak maps "first"/"last" to a TieBreak.
func ParseTieBreak(s string) (TieBreak, error) {
	switch s {
	case "first", "":
		return KeepFirst, nil
	case "last":
		return KeepLast, nil
	}

	return KeepFirst, fmt.Errorf("partition: unknown tie-break %q", s)
}

// Options configures Solve.
//
// TieBreak  – equal-cost policy, KeepFirst by default.
// MaxStates – upper bound on materialized states; 0 means unlimited.
// Logger    – receives Debug entries per layer and a summary; discarded by default.
type Options struct {
	TieBreak  TieBreak
	MaxStates int
	Logger    logrus.FieldLogger
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithTieBreak sets the equal-cost policy. Unknown values panic.
func WithTieBreak(tb TieBreak) Option {
	if tb != KeepFirst && tb != KeepLast {
		panic(fmt.Sprintf("partition: invalid tie-break %d", int(tb)))
	}

	return func(o *Options) {
		o.TieBreak = tb
	}
}

// WithMaxStates caps the total number of DP states. Negative values panic;
// 0 removes the cap.
func WithMaxStates(n int) Option {
	if n < 0 {
		panic(ErrStateBudget.Error() + ": MaxStates must be non-negative")
	}

	return func(o *Options) {
		o.MaxStates = n
	}
}

// WithLogger routes progress entries to l. A nil l keeps the discard logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns Options with KeepFirst, no state cap and a logger
// that discards everything.
func DefaultOptions() Options {
	return Options{
		TieBreak:  KeepFirst,
		MaxStates: 0,
		Logger:    discardLogger(),
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
