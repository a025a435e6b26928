package derna

import (
	"math/rand"
	"reflect"
	"strings"
	"testing"
)

func Test_toRNA(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		want string
	}{
		{"dna to rna", "gattaca", "GAUUACA"},
		{"already rna", "GAUUACA", "GAUUACA"},
		{"mixed case", "gAtTaCa", "GAUUACA"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := toRNA(tt.seq); got != tt.want {
				t.Errorf("toRNA() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_randomSequence(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	seq := randomSequence(200, rng)
	if len(seq) != 200 {
		t.Fatalf("len(randomSequence(200)) = %d", len(seq))
	}

	for _, c := range seq {
		if !strings.ContainsRune(rnaBases, c) {
			t.Fatalf("randomSequence() produced %q outside the RNA alphabet", c)
		}
	}
}

func Test_cutPoints(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		cut  int
		want string
	}{
		{"middle", "GGGGCCCC", 5, "GGGG&CCCC"},
		{"start is a no-op", "GGGGCCCC", 1, "GGGGCCCC"},
		{"out of range", "GGGG", 9, "GGGG"},
		{"negative", "GGGG", -1, "GGGG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cutPointInsert(tt.seq, tt.cut); got != tt.want {
				t.Errorf("cutPointInsert() = %v, want %v", got, tt.want)
			}
		})
	}

	// marked sequences round-trip
	joined, cut := cutPointRemove("GGGG&CCCC")
	if joined != "GGGGCCCC" || cut != 5 {
		t.Errorf("cutPointRemove() = %v, %d, want GGGGCCCC, 5", joined, cut)
	}

	joined, cut = cutPointRemove("GGGGCCCC")
	if joined != "GGGGCCCC" || cut != -1 {
		t.Errorf("cutPointRemove() without a marker = %v, %d, want GGGGCCCC, -1", joined, cut)
	}
}

func Test_pairTable(t *testing.T) {
	tests := []struct {
		name      string
		structure string
		want      []int
		wantErr   bool
	}{
		{
			"hairpin",
			"((..))",
			[]int{5, 4, -1, -1, 1, 0},
			false,
		},
		{
			"unpaired",
			"....",
			[]int{-1, -1, -1, -1},
			false,
		},
		{
			"empty",
			"",
			[]int{},
			false,
		},
		{
			"unbalanced close",
			"))",
			nil,
			true,
		},
		{
			"unbalanced open",
			"((.",
			nil,
			true,
		},
		{
			"unknown character",
			"((&))",
			nil,
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pairTable(tt.structure)
			if (err != nil) != tt.wantErr {
				t.Fatalf("pairTable() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("pairTable() = %v, want %v", got, tt.want)
			}
		})
	}
}
