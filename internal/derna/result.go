// Package derna designs RNA sequences against a target secondary structure
// using an external RNAfold-compatible folding engine.
package derna

// Result is one completed evaluation of one candidate sequence: the sequence
// itself, its fold under the structural constraint, its unconstrained fold,
// and the energies the engine reported for each. Results are immutable after
// construction and safe to share between goroutines.
type Result struct {
	// the candidate RNA sequence that was evaluated
	sequence string

	// the structure predicted under the structural constraint
	restricted string

	// free energy of the restricted structure (kcal/mol)
	restrictedEnergy float64

	// the unconstrained predicted structure
	finalStructure string

	// free energy of the final structure (kcal/mol)
	finalEnergy float64

	// ensemble free energy from the partition function (kcal/mol)
	pfEnergy float64
}

// NewResult stores the evaluated sequence and the folding engine's output
// verbatim. No parsing or validation happens here: the caller supplies
// already-folded, well-formed data. An empty structure is a valid
// degenerate fold, not an error.
func NewResult(
	sequence,
	restricted string,
	restrictedEnergy float64,
	finalStructure string,
	finalEnergy,
	pfEnergy float64,
) Result {
	return Result{
		sequence:         sequence,
		restricted:       restricted,
		restrictedEnergy: restrictedEnergy,
		finalStructure:   finalStructure,
		finalEnergy:      finalEnergy,
		pfEnergy:         pfEnergy,
	}
}

// Sequence returns the candidate RNA sequence that was evaluated.
func (r Result) Sequence() string {
	return r.sequence
}

// Restricted returns the structure predicted under the constraint.
func (r Result) Restricted() string {
	return r.restricted
}

// RestrictedEnergy returns the free energy of the restricted structure.
func (r Result) RestrictedEnergy() float64 {
	return r.restrictedEnergy
}

// FinalStructure returns the unconstrained predicted structure.
func (r Result) FinalStructure() string {
	return r.finalStructure
}

// FinalEnergy returns the free energy of the final structure.
func (r Result) FinalEnergy() float64 {
	return r.finalEnergy
}

// PFEnergy returns the ensemble free energy of the sequence.
func (r Result) PFEnergy() float64 {
	return r.pfEnergy
}

// better reports whether x outranks y. A lower final (unconstrained) energy
// wins outright; failing that, a lower restricted energy wins.
//
// The two checks are independent, so better is not transitive and not
// antisymmetric for every energy combination: x may outrank y on the
// restricted key while y outranks x on the final key. Callers must treat it
// as a pairwise preference, not as a sort order. The candidate pool only
// ever applies it to one pair at a time.
func better(x, y Result) bool {
	if x.finalEnergy < y.finalEnergy {
		return true
	}

	if x.restrictedEnergy < y.restrictedEnergy {
		return true
	}

	return false
}
