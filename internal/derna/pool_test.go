package derna

import (
	"reflect"
	"testing"
)

func Test_pool_add(t *testing.T) {
	r1 := result(-2.0, -2.0)
	r2 := result(-4.0, -4.0)
	r3 := result(-6.0, -6.0)
	r4 := result(-1.0, -1.0)

	p := newPool(2)

	// fills free capacity
	if !p.add(r1) || !p.add(r2) {
		t.Fatal("add() = false while the pool had free capacity")
	}
	if p.size() != 2 {
		t.Fatalf("size() = %d, want 2", p.size())
	}

	// a better result evicts the current worst
	if !p.add(r3) {
		t.Error("add(r3) = false, want true (better than the worst member)")
	}
	if p.size() != 2 {
		t.Errorf("size() = %d after eviction, want 2", p.size())
	}
	if worst, _ := p.worst(); worst != r2 {
		t.Errorf("worst() = %+v, want r2 after r1 was evicted", worst)
	}

	// a worse result is refused
	if p.add(r4) {
		t.Error("add(r4) = true, want false (worse than every member)")
	}

	if best, ok := p.best(); !ok || best != r3 {
		t.Errorf("best() = %+v, want r3", best)
	}
}

func Test_pool_results(t *testing.T) {
	rs := []Result{
		result(-2.0, -2.0),
		result(-6.0, -6.0),
		result(-4.0, -4.0),
	}

	p := newPool(5)
	for _, r := range rs {
		p.add(r)
	}

	want := []Result{rs[1], rs[2], rs[0]} // best first
	if got := p.results(); !reflect.DeepEqual(got, want) {
		t.Errorf("results() = %+v, want %+v", got, want)
	}
}

func Test_pool_empty(t *testing.T) {
	p := newPool(3)

	if _, ok := p.best(); ok {
		t.Error("best() ok = true on an empty pool")
	}
	if _, ok := p.worst(); ok {
		t.Error("worst() ok = true on an empty pool")
	}
	if got := p.results(); len(got) != 0 {
		t.Errorf("results() = %+v, want empty", got)
	}

	// a zero-capacity pool refuses everything
	z := newPool(0)
	if z.add(result(-10.0, -10.0)) {
		t.Error("add() = true on a zero-capacity pool")
	}
}

// the better preference can cycle (see Test_better_cycle), so the pool's
// internal arrangement must not depend on it: a full pool holding cyclic
// members still evicts exactly one member per admission and never grows
// past its capacity
func Test_pool_cyclic_members(t *testing.T) {
	a := result(-8.0, -2.0)
	b := result(-7.0, -9.0)
	c := result(-8.0, -5.0)

	p := newPool(3)
	p.add(a)
	p.add(b)
	p.add(c)

	// better than every member on the final key
	d := result(-9.0, 0)
	if !p.add(d) {
		t.Fatal("add(d) = false, want true (better than the worst member)")
	}

	if p.size() != 3 {
		t.Fatalf("size() = %d after admission to a full pool, want 3", p.size())
	}

	// b ranks worst on the final key and is the member evicted
	want := []Result{d, c, a}
	if got := p.results(); !reflect.DeepEqual(got, want) {
		t.Errorf("results() = %+v, want %+v", got, want)
	}

	// worse than the worst member on both keys, refused
	if p.add(result(-1.0, 0)) {
		t.Error("add() = true, want false (worse than every member)")
	}
	if p.size() != 3 {
		t.Errorf("size() = %d after refusal, want 3", p.size())
	}
}

// results that tie on both energies keep their admission order
func Test_pool_ties(t *testing.T) {
	a := NewResult("AAAA", "....", -1.0, "....", -1.0, -1.0)
	b := NewResult("CCCC", "....", -1.0, "....", -1.0, -1.0)

	p := newPool(5)
	p.add(a)
	p.add(b)

	want := []Result{a, b}
	if got := p.results(); !reflect.DeepEqual(got, want) {
		t.Errorf("results() = %+v, want %+v", got, want)
	}
}
