package derna

import (
	"github.com/emirpasic/gods/trees/redblacktree"
)

// ranked is a pool entry: a Result plus the order it was admitted in.
// The admission order breaks ties between results with equal energies,
// keeping pool contents deterministic for a given insert order.
type ranked struct {
	res Result
	seq uint64
}

// pool is a bounded best-k collection of Results. Once full, a new Result
// is only admitted if it is better than the current worst member, which is
// then evicted.
//
// The admit/evict decision is the only place the better preference is
// applied, and only ever to one pair at a time: better is not transitive,
// so it cannot arrange the tree. Members are instead keyed on the total
// order (finalEnergy, restrictedEnergy, admission seq), under which the
// tree max is the worst member and results() reads off rank order.
//
// The pool is not safe for concurrent use; the design loop serializes
// access behind a mutex.
type pool struct {
	k    int
	next uint64
	tree *redblacktree.Tree
}

// newPool creates an empty pool that holds at most k results.
func newPool(k int) *pool {
	return &pool{
		k: k,
		tree: redblacktree.NewWith(func(a, b interface{}) int {
			x := a.(ranked)
			y := b.(ranked)

			if x.res.finalEnergy != y.res.finalEnergy {
				if x.res.finalEnergy < y.res.finalEnergy {
					return -1
				}
				return 1
			}

			if x.res.restrictedEnergy != y.res.restrictedEnergy {
				if x.res.restrictedEnergy < y.res.restrictedEnergy {
					return -1
				}
				return 1
			}

			// equal on both energies, keep admission order
			if x.seq < y.seq {
				return -1
			}
			if x.seq > y.seq {
				return 1
			}
			return 0
		}),
	}
}

// add offers a Result to the pool, returning whether it was admitted.
// While the pool has free capacity every Result is admitted; afterwards a
// Result is admitted only if better than the current worst, which is evicted.
func (p *pool) add(r Result) bool {
	if p.k < 1 {
		return false
	}

	if p.tree.Size() < p.k {
		p.tree.Put(ranked{res: r, seq: p.next}, nil)
		p.next++
		return true
	}

	worst := p.tree.Right().Key.(ranked)
	if !better(r, worst.res) {
		return false
	}

	p.tree.Remove(worst)
	p.tree.Put(ranked{res: r, seq: p.next}, nil)
	p.next++

	return true
}

// size returns the number of results currently held.
func (p *pool) size() int {
	return p.tree.Size()
}

// best returns the top-ranked Result, if the pool is non-empty.
func (p *pool) best() (Result, bool) {
	node := p.tree.Left()
	if node == nil {
		return Result{}, false
	}
	return node.Key.(ranked).res, true
}

// worst returns the bottom-ranked Result, if the pool is non-empty.
func (p *pool) worst() (Result, bool) {
	node := p.tree.Right()
	if node == nil {
		return Result{}, false
	}
	return node.Key.(ranked).res, true
}

// results returns the pool's contents in rank order, best first.
func (p *pool) results() []Result {
	keys := p.tree.Keys()

	rs := make([]Result, len(keys))
	for i, k := range keys {
		rs[i] = k.(ranked).res
	}

	return rs
}
