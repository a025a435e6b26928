package derna

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/HosnaJabbari/derna/config"
	"github.com/spf13/cobra"
)

// DesignCmd takes a cobra command (with its flags) and runs Design.
func DesignCmd(cmd *cobra.Command, args []string) {
	Design(parseCmdFlags(cmd, args))
}

// Design is for running an end to end sequence design against a target
// structure. The ranked candidates are written to the output path.
func Design(flags *Flags, conf *config.Config) []Result {
	start := time.Now()

	folder := NewViennaFolder(conf)

	results, err := design(flags.target, flags.constraint, folder, conf, flags.seed)
	if err != nil {
		stderr.Fatalln(err)
	}

	elapsed := time.Since(start)
	if _, err = writeJSON(flags.out, flags.target, results, elapsed.Seconds()); err != nil {
		stderr.Fatalln(err)
	}

	if conf.Verbose {
		fmt.Printf("%s\n\n", elapsed)
	}

	return results
}

// design searches for sequences whose unconstrained fold is as stable as
// possible while matching the target structure.
//
// The first generation is seeded with random structure-compatible
// sequences. Each later generation mutates the pool's current members.
// Every candidate is evaluated with the folding engine (a restricted fold,
// a final fold and a partition function) and the Result offered to a
// bounded best-k pool, which keeps the top designs seen so far.
//
// Candidates are folded concurrently across conf.Design.Workers workers;
// pool access is serialized behind a mutex. Candidate generation itself is
// single threaded so that a fixed seed reproduces the same sequences.
func design(target, constraint string, f Folder, conf *config.Config, seed int64) ([]Result, error) {
	if target == "" {
		return nil, fmt.Errorf("no target structure to design against")
	}

	table, err := pairTable(target)
	if err != nil {
		return nil, err
	}

	if constraint == "" {
		constraint = target
	}

	rng := rand.New(rand.NewSource(seed))
	p := newPool(conf.Design.Keep)
	var mu sync.Mutex // guards p

	for gen := 0; gen < conf.Design.Generations; gen++ {
		mu.Lock()
		parents := p.results()
		mu.Unlock()

		// build this generation's candidates before folding any of them
		candidates := make([]string, conf.Design.Population)
		for i := range candidates {
			if len(parents) == 0 {
				candidates[i] = compatibleSequence(table, rng)
			} else {
				parent := parents[rng.Intn(len(parents))]
				candidates[i] = mutate(parent.Sequence(), table, conf.Design.Mutations, rng)
			}
		}

		jobs := make(chan string)
		var wg sync.WaitGroup
		var firstErr error

		for w := 0; w < conf.Design.Workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()

				for seq := range jobs {
					r, err := evaluate(f, seq, constraint)

					mu.Lock()
					if err != nil {
						if firstErr == nil {
							firstErr = err
						}
					} else {
						p.add(r)
					}
					mu.Unlock()
				}
			}()
		}

		for _, seq := range candidates {
			jobs <- seq
		}
		close(jobs)
		wg.Wait()

		// an engine failure means every remaining call would fail the same way
		if firstErr != nil {
			return nil, firstErr
		}
	}

	return p.results(), nil
}
