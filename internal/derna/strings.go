package derna

import (
	"fmt"
	"math/rand"
	"strings"
)

// rnaBases is the alphabet candidate sequences are drawn from.
const rnaBases = "ACGU"

// toRNA uppercases a sequence and converts DNA thymine to uracil.
func toRNA(seq string) string {
	return strings.ReplaceAll(strings.ToUpper(seq), "T", "U")
}

// randomSequence returns a random sequence of n bases over the RNA alphabet.
func randomSequence(n int, rng *rand.Rand) string {
	seq := make([]byte, n)
	for i := range seq {
		seq[i] = rnaBases[rng.Intn(len(rnaBases))]
	}
	return string(seq)
}

// cutPointInsert marks the boundary between two concatenated strands with
// a '&' at the cut index. A cut less than 1 or beyond the sequence leaves
// it unchanged.
func cutPointInsert(seq string, cut int) string {
	if cut < 1 || cut > len(seq) {
		return seq
	}
	return seq[:cut-1] + "&" + seq[cut-1:]
}

// cutPointRemove strips the '&' strand boundary from a sequence, returning
// the joined sequence and the 1-based cut index. Sequences without a
// boundary return a cut of -1.
func cutPointRemove(seq string) (string, int) {
	cut := strings.IndexByte(seq, '&')
	if cut < 0 {
		return seq, -1
	}
	return strings.ReplaceAll(seq, "&", ""), cut + 1
}

// pairTable parses a dot-bracket structure into a table mapping each
// position to its pairing partner, with -1 for unpaired positions.
// Unbalanced structures are an error.
func pairTable(structure string) ([]int, error) {
	table := make([]int, len(structure))
	var stack []int

	for i, c := range structure {
		switch c {
		case '(':
			stack = append(stack, i)
			table[i] = -1
		case ')':
			if len(stack) == 0 {
				return nil, fmt.Errorf("unbalanced structure %q: ')' at %d has no partner", structure, i)
			}
			j := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			table[i] = j
			table[j] = i
		case '.':
			table[i] = -1
		default:
			return nil, fmt.Errorf("unknown character %q in structure %q", c, structure)
		}
	}

	if len(stack) > 0 {
		return nil, fmt.Errorf("unbalanced structure %q: '(' at %d has no partner", structure, stack[len(stack)-1])
	}

	return table, nil
}
