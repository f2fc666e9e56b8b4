package partition

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// node is one arena record: a reachable state, the cheapest cost found for
// it and the decision that produced that cost. parent indexes the previous
// layer's nodes; the root has parent == -1 and team == -1.
type node struct {
	st     state
	cost   int64
	parent int32
	team   int32
	closed bool
}

// layer holds the states reachable after a fixed number of placements.
// nodes keeps discovery order, which is also the expansion order of the next
// sweep step; index maps a state key to its position in nodes and is only
// needed while the layer is being built (and for the final lookup).
type layer struct {
	nodes []node
	index map[uint64]int32
}

// table is the layered DP arena: layers[t] holds states after t placements.
type table struct {
	freq   *Frequency
	codec  codec
	layers []layer
	states int
}

// newTable allocates N+1 layers sized by layerHints and seeds layer 0 with
// the all-zero root (cost 0, no predecessor).
func newTable(f *Frequency, c codec) *table {
	hints := layerHints(f)
	tb := &table{
		freq:   f,
		codec:  c,
		layers: make([]layer, f.N+1),
	}
	var t int
	for t = 0; t <= f.N; t++ {
		tb.layers[t] = layer{
			nodes: make([]node, 0, hints[t]),
			index: make(map[uint64]int32, hints[t]),
		}
	}

	var root state
	tb.layers[0].nodes = append(tb.layers[0].nodes, node{st: root, parent: -1, team: -1})
	tb.layers[0].index[c.key(root)] = 0
	tb.states = 1

	return tb
}

// find returns the position of s in layer t.
func (tb *table) find(t int, s state) (int32, bool) {
	idx := tb.layers[t].index
	if idx == nil {
		return 0, false
	}
	pos, ok := idx[tb.codec.key(s)]

	return pos, ok
}

// sweeper holds the mutable state for a single forward pass.
type sweeper struct {
	tb   *table
	opts Options
	log  logrus.FieldLogger
}

// process expands layers 0..N-1 in order. Layer t+1 depends only on the
// complete contents of layer t.
//
// Returns ErrStateBudget when Options.MaxStates is exceeded.
func (sw *sweeper) process() error {
	n := sw.tb.freq.N
	var (
		t   int
		err error
	)
	for t = 0; t < n; t++ {
		if err = sw.expand(t); err != nil {
			return err
		}
		// The next layer is complete; its index is no longer needed except
		// for the final lookup at layer N.
		if t+1 < n {
			sw.tb.layers[t+1].index = nil
		}
		sw.log.WithFields(logrus.Fields{
			"layer":  t + 1,
			"states": len(sw.tb.layers[t+1].nodes),
		}).Debug("partition: layer expanded")
	}

	return nil
}

// expand generates every successor of every node of layer t.
//
// For each node and each strength level v (ascending) with unused teams,
// the candidate is the next unused team of bucket v. Either the open group
// grows (cost unchanged) or it closes and |(s+v)·M − Total| is added.
func (sw *sweeper) expand(t int) error {
	f := sw.tb.freq
	cur := &sw.tb.layers[t]
	next := &sw.tb.layers[t+1]

	var (
		i, lvl int
		nd     node
		ns     state
		cost   int64
		team   int
		closed bool
		err    error
	)
	for i = 0; i < len(cur.nodes); i++ {
		nd = cur.nodes[i]
		for lvl = 0; lvl < Levels; lvl++ {
			if nd.st.used[lvl] >= f.Counts[lvl] {
				continue // bucket exhausted
			}
			team = f.Buckets[lvl][nd.st.used[lvl]]

			ns = nd.st
			ns.used[lvl]++
			cost = nd.cost
			if nd.st.open+1 < f.K {
				ns.open++
				ns.sum += strength(lvl)
				closed = false
			} else {
				cost += Imbalance(nd.st.sum+strength(lvl), f.M, f.Total)
				ns.open, ns.sum = 0, 0
				closed = true
			}

			if err = sw.relax(next, ns, cost, int32(i), int32(team), closed); err != nil {
				return err
			}
		}
	}

	return nil
}

// relax records (ns, cost) in next if ns is new or cost improves on the
// stored value. Equal costs replace the stored path only under KeepLast.
func (sw *sweeper) relax(next *layer, ns state, cost int64, parent, team int32, closed bool) error {
	key := sw.tb.codec.key(ns)
	if pos, ok := next.index[key]; ok {
		stored := &next.nodes[pos]
		if cost < stored.cost || (cost == stored.cost && sw.opts.TieBreak == KeepLast) {
			stored.cost = cost
			stored.parent = parent
			stored.team = team
			stored.closed = closed
		}

		return nil
	}

	if sw.opts.MaxStates > 0 && sw.tb.states >= sw.opts.MaxStates {
		return fmt.Errorf("%w: limit %d reached", ErrStateBudget, sw.opts.MaxStates)
	}
	if len(next.nodes) >= math.MaxInt32 {
		return fmt.Errorf("%w: layer exceeds %d states", ErrStateBudget, math.MaxInt32)
	}

	next.index[key] = int32(len(next.nodes))
	next.nodes = append(next.nodes, node{
		st:     ns,
		cost:   cost,
		parent: parent,
		team:   team,
		closed: closed,
	})
	sw.tb.states++

	return nil
}
