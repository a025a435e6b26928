package derna

import (
	"math/rand"
	"strings"
	"testing"
)

// complementary reports whether a sequence's paired positions all hold
// one of the allowed base pairs.
func complementary(seq string, table []int) bool {
	for i, j := range table {
		if j < 0 || i > j {
			continue
		}

		paired := false
		for _, p := range pairings {
			if seq[i] == p[0] && seq[j] == p[1] {
				paired = true
				break
			}
		}
		if !paired {
			return false
		}
	}
	return true
}

func Test_compatibleSequence(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	structure := "((((....))))..((...))"
	table, err := pairTable(structure)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 25; i++ {
		seq := compatibleSequence(table, rng)

		if len(seq) != len(structure) {
			t.Fatalf("len(compatibleSequence()) = %d, want %d", len(seq), len(structure))
		}
		if !complementary(seq, table) {
			t.Fatalf("compatibleSequence() = %s, paired positions are not complementary", seq)
		}
		for _, c := range seq {
			if !strings.ContainsRune(rnaBases, c) {
				t.Fatalf("compatibleSequence() produced %q outside the RNA alphabet", c)
			}
		}
	}
}

func Test_mutate(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	structure := "((((....))))"
	table, err := pairTable(structure)
	if err != nil {
		t.Fatal(err)
	}

	seq := compatibleSequence(table, rng)

	for i := 0; i < 25; i++ {
		mutated := mutate(seq, table, 3, rng)

		if len(mutated) != len(seq) {
			t.Fatalf("len(mutate()) = %d, want %d", len(mutated), len(seq))
		}
		if !complementary(mutated, table) {
			t.Fatalf("mutate() = %s, paired positions are not complementary", mutated)
		}

		seq = mutated
	}
}
