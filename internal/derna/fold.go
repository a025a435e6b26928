package derna

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/HosnaJabbari/derna/config"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// FoldCmd folds a single sequence with the external engine and prints its
// structures and energies.
func FoldCmd(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		cmd.Help()
		stderr.Fatalln("\nno sequence passed.")
	}
	seq := toRNA(args[0])

	constraint, err := cmd.Flags().GetString("constraint")
	if err != nil {
		constraint = ""
	}

	conf := config.New()
	folder := NewViennaFolder(conf)

	final, finalEnergy, err := folder.Fold(seq, "")
	if err != nil {
		stderr.Fatalln(err)
	}

	pfEnergy, err := folder.PartitionFunction(seq)
	if err != nil {
		stderr.Fatalln(err)
	}

	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 3, ' ', 0)
	fmt.Fprintf(writer, "seq\t%s\n", seq)
	fmt.Fprintf(writer, "mfe\t%s\t%.2f\n", final, finalEnergy)

	if constraint != "" {
		restricted, restrictedEnergy, err := folder.Fold(seq, constraint)
		if err != nil {
			stderr.Fatalln(err)
		}
		fmt.Fprintf(writer, "restricted\t%s\t%.2f\n", restricted, restrictedEnergy)
	}

	fmt.Fprintf(writer, "ensemble\t\t%.2f\n", pfEnergy)
	writer.Flush()
}

// Folder is the folding engine capability the design loop depends on.
// Implementations must be deterministic for fixed inputs and safe to call
// from multiple goroutines.
type Folder interface {
	// Fold predicts a secondary structure and its free energy for seq.
	// A non-empty constraint (dot-bracket notation) restricts the
	// prediction; an empty constraint folds the sequence freely.
	Fold(seq, constraint string) (structure string, energy float64, err error)

	// PartitionFunction returns the ensemble free energy of seq.
	PartitionFunction(seq string) (float64, error)
}

// viennaFolder executes an external RNAfold-compatible binary per call,
// writing the sequence (and constraint) to stdin and parsing stdout.
type viennaFolder struct {
	// name of or path to the RNAfold executable
	path string

	// args passed on every invocation
	args []string
}

// NewViennaFolder creates a Folder around the RNAfold binary named
// in the config.
func NewViennaFolder(conf *config.Config) Folder {
	args := []string{"--noPS"}
	if conf.Engine.Temperature != 37.0 {
		args = append(args, "-T", strconv.FormatFloat(conf.Engine.Temperature, 'f', -1, 64))
	}

	return &viennaFolder{
		path: conf.Engine.Path,
		args: args,
	}
}

// Fold runs the engine once. With a constraint, the constraint line is
// passed after the sequence and the engine is run in constrained mode.
func (v *viennaFolder) Fold(seq, constraint string) (string, float64, error) {
	in := toRNA(seq) + "\n"
	var args []string
	if constraint != "" {
		in += constraint + "\n"
		args = append(args, "-C")
	}

	out, err := v.run(in, args...)
	if err != nil {
		return "", 0, err
	}

	// first line echoes the sequence, second holds the structure and energy
	lines := outputLines(out)
	if len(lines) < 2 {
		return "", 0, errors.Errorf("unexpected %s output: %q", v.path, out)
	}

	return parseFoldLine(lines[1])
}

// PartitionFunction runs the engine in partition function mode and parses
// the ensemble free energy line.
func (v *viennaFolder) PartitionFunction(seq string) (float64, error) {
	out, err := v.run(toRNA(seq)+"\n", "-p0")
	if err != nil {
		return 0, err
	}

	for _, line := range outputLines(out) {
		if strings.Contains(line, "free energy of ensemble") || strings.Contains(line, "[") {
			return parseEnsembleLine(line)
		}
	}

	return 0, errors.Errorf("no ensemble energy in %s output: %q", v.path, out)
}

// run executes the engine with the passed stdin and extra args.
func (v *viennaFolder) run(stdin string, args ...string) (string, error) {
	cmd := exec.Command(v.path, append(append([]string{}, v.args...), args...)...)
	cmd.Stdin = strings.NewReader(stdin)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", errors.Wrapf(err, "failed to execute %s: %s", v.path, stderr.String())
	}

	return stdout.String(), nil
}

// outputLines splits engine output into its non-empty lines.
func outputLines(out string) (lines []string) {
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return
}

// parseFoldLine splits an RNAfold structure line, eg
// "((((....)))) ( -5.20)", into its dot-bracket structure and free energy.
// The energy's whitespace varies with its magnitude.
func parseFoldLine(line string) (string, float64, error) {
	open := strings.LastIndex(line, "(")
	close := strings.LastIndex(line, ")")
	if open < 0 || close < open {
		return "", 0, fmt.Errorf("no energy in structure line %q", line)
	}

	energy, err := strconv.ParseFloat(strings.TrimSpace(line[open+1:close]), 64)
	if err != nil {
		return "", 0, fmt.Errorf("failed to parse energy in %q: %v", line, err)
	}

	return strings.TrimSpace(line[:open]), energy, nil
}

// parseEnsembleLine pulls the ensemble free energy out of an RNAfold
// partition function line. In -p0 mode the engine prints a text line,
// " free energy of ensemble = -5.60 kcal/mol"; in -p mode the energy is
// bracketed after the pairing propensity string, "(((,....,))) [ -5.60]".
func parseEnsembleLine(line string) (float64, error) {
	if strings.Contains(line, "free energy of ensemble") {
		eq := strings.IndexByte(line, '=')
		if eq < 0 {
			return 0, fmt.Errorf("no ensemble energy in line %q", line)
		}

		field := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line[eq+1:]), "kcal/mol"))
		energy, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return 0, fmt.Errorf("failed to parse ensemble energy in %q: %v", line, err)
		}

		return energy, nil
	}

	open := strings.LastIndex(line, "[")
	close := strings.LastIndex(line, "]")
	if open < 0 || close < open {
		return 0, fmt.Errorf("no ensemble energy in line %q", line)
	}

	energy, err := strconv.ParseFloat(strings.TrimSpace(line[open+1:close]), 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse ensemble energy in %q: %v", line, err)
	}

	return energy, nil
}

// evaluate folds seq twice, once under the constraint and once freely,
// computes its partition function, and packs the engine's output into a
// Result. The Result is fully built before it is returned, so callers can
// hand it to the pool as soon as they have it.
func evaluate(f Folder, seq, constraint string) (Result, error) {
	restricted, restrictedEnergy, err := f.Fold(seq, constraint)
	if err != nil {
		return Result{}, err
	}

	final, finalEnergy, err := f.Fold(seq, "")
	if err != nil {
		return Result{}, err
	}

	pfEnergy, err := f.PartitionFunction(seq)
	if err != nil {
		return Result{}, err
	}

	return NewResult(seq, restricted, restrictedEnergy, final, finalEnergy, pfEnergy), nil
}
