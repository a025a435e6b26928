package derna

import (
	"math/rand"
)

// pairings are the base pairs sampled for positions the target structure
// pairs up: the Watson-Crick pairs plus the GU wobble pairs.
var pairings = [][2]byte{
	{'A', 'U'},
	{'U', 'A'},
	{'G', 'C'},
	{'C', 'G'},
	{'G', 'U'},
	{'U', 'G'},
}

// compatibleSequence returns a random sequence compatible with a structure's
// pair table: paired positions hold one of the allowed base pairs, unpaired
// positions hold any base.
func compatibleSequence(table []int, rng *rand.Rand) string {
	seq := make([]byte, len(table))

	for i, j := range table {
		if j < 0 {
			seq[i] = rnaBases[rng.Intn(len(rnaBases))]
		} else if i < j {
			p := pairings[rng.Intn(len(pairings))]
			seq[i] = p[0]
			seq[j] = p[1]
		}
	}

	return string(seq)
}

// mutate returns a copy of seq with count positions resampled. A mutation
// that lands on a paired position resamples the position and its partner
// together, so the sequence stays compatible with the structure.
func mutate(seq string, table []int, count int, rng *rand.Rand) string {
	mutated := []byte(seq)

	for m := 0; m < count; m++ {
		i := rng.Intn(len(mutated))

		if j := table[i]; j >= 0 {
			p := pairings[rng.Intn(len(pairings))]
			mutated[i] = p[0]
			mutated[j] = p[1]
		} else {
			mutated[i] = rnaBases[rng.Intn(len(rnaBases))]
		}
	}

	return string(mutated)
}
