package partition

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Solve partitions values (strengths in MinLevel..MaxLevel) into m groups of
// k teams with minimal total imbalance.
//
// Returns:
//   - Result with Feasible == true, m groups of 1-based IDs in assignment
//     order and the minimal Cost; or
//   - Result with Feasible == false and Cost == NoCost when no complete
//     assignment is reachable (not an error); or
//   - a validation error (ErrBadShape, ErrSizeMismatch, ErrLevelOutOfRange)
//     before any search, or a resource error (ErrStateBudget,
//     ErrStateSpaceOverflow).
//
// The search is deterministic: same input and options, same Result.
//
// Panics wrapping ErrInconsistentPath signal a defect in the search, never
// bad input.
func Solve(values []int, m, k int, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	f, err := Index(values, m, k)
	if err != nil {
		return Result{}, err
	}

	return solveIndexed(f, cfg)
}

// SolveTeams is Solve over a roster. Group IDs refer to roster positions
// (position+1); use Result.Members to map them back to teams.
func SolveTeams(teams []Team, m, k int, opts ...Option) (Result, error) {
	values := make([]int, len(teams))
	var i int
	for i = range teams {
		values[i] = teams[i].Strength
	}

	return Solve(values, m, k, opts...)
}

// Members resolves Groups against the roster passed to SolveTeams.
// IDs outside the roster are skipped.
func (r Result) Members(teams []Team) [][]Team {
	out := make([][]Team, len(r.Groups))
	var (
		g, id int
		group []int
	)
	for g, group = range r.Groups {
		out[g] = make([]Team, 0, len(group))
		for _, id = range group {
			if id < 1 || id > len(teams) {
				continue
			}
			out[g] = append(out[g], teams[id-1])
		}
	}

	return out
}

// solveIndexed runs the sweep and the reconstruction on a validated index.
func solveIndexed(f *Frequency, cfg Options) (Result, error) {
	start := time.Now()
	log := cfg.Logger.WithFields(logrus.Fields{
		"teams":  f.N,
		"groups": f.M,
		"size":   f.K,
	})

	c, err := newCodec(f)
	if err != nil {
		return Result{}, err
	}
	tb := newTable(f, c)
	sw := &sweeper{tb: tb, opts: cfg, log: log}
	if err = sw.process(); err != nil {
		log.WithError(err).Debug("partition: search aborted")
		return Result{}, err
	}

	res := Result{
		M:      f.M,
		K:      f.K,
		Total:  f.Total,
		States: tb.states,
		Cost:   NoCost,
	}

	pos, ok := tb.find(f.N, finalState(f))
	if !ok {
		log.WithField("states", tb.states).Debug("partition: no complete assignment")
		return res, nil
	}

	res.Groups = fold(tb.backtrack(pos), f.M, f.K)
	res.Cost = tb.layers[f.N].nodes[pos].cost
	res.Feasible = true

	log.WithFields(logrus.Fields{
		"states":  res.States,
		"cost":    res.Cost,
		"elapsed": time.Since(start),
	}).Debug("partition: solved")

	return res, nil
}
