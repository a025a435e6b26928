package derna

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

// Candidate is one ranked design in the output report.
type Candidate struct {
	// Rank among the reported candidates, 1 is best
	Rank int `json:"rank"`

	// Sequence is the designed RNA sequence
	Sequence string `json:"seq"`

	// Restricted is the structure predicted under the constraint
	Restricted string `json:"restricted"`

	// RestrictedEnergy is the free energy of the restricted structure
	RestrictedEnergy float64 `json:"restrictedEnergy"`

	// FinalStructure is the unconstrained predicted structure
	FinalStructure string `json:"finalStructure"`

	// FinalEnergy is the free energy of the final structure
	FinalEnergy float64 `json:"finalEnergy"`

	// PFEnergy is the ensemble free energy of the sequence
	PFEnergy float64 `json:"pfEnergy"`
}

// Output is a struct containing design results for a run.
type Output struct {
	// ID uniquely identifies this design run
	ID string `json:"id"`

	// Target dot-bracket structure the candidates were designed against
	Target string `json:"target"`

	// Time, ex: "2018-01-01 20:41:00"
	Time string `json:"time"`

	// Execution is the number of seconds it took to execute the command
	Execution float64 `json:"execution"`

	// Candidates, best first
	Candidates []Candidate `json:"candidates"`
}

// writeJSON turns the ranked results into an Output and writes it to the
// filename requested.
func writeJSON(filename, target string, results []Result, seconds float64) (*Output, error) {
	candidates := make([]Candidate, len(results))
	for i, r := range results {
		candidates[i] = Candidate{
			Rank:             i + 1,
			Sequence:         r.Sequence(),
			Restricted:       r.Restricted(),
			RestrictedEnergy: r.RestrictedEnergy(),
			FinalStructure:   r.FinalStructure(),
			FinalEnergy:      r.FinalEnergy(),
			PFEnergy:         r.PFEnergy(),
		}
	}

	out := &Output{
		ID:         uuid.New().String(),
		Target:     target,
		Time:       time.Now().Format("2006-01-02 15:04:05"),
		Execution:  seconds,
		Candidates: candidates,
	}

	contents, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize output: %v", err)
	}

	if err = os.WriteFile(filename, contents, 0666); err != nil {
		return nil, fmt.Errorf("failed to write the output: %v", err)
	}

	return out, nil
}
