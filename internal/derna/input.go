package derna

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/HosnaJabbari/derna/config"
	"github.com/spf13/cobra"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)
)

// Flags contains parsed cobra flags like "in", "out", "constraint", etc
// that are used by the design command.
type Flags struct {
	// input file with the target structure (unless passed inline)
	in string

	// the name of the file to write the ranked candidates to
	out string

	// the target dot-bracket structure to design against
	target string

	// structure constraint for the restricted fold (defaults to target)
	constraint string

	// seed for the search's random number generator
	seed int64
}

// inputParser contains methods for parsing flags from the input &cobra.Command.
type inputParser struct{}

// NewFlags makes a new flags object manually. for testing.
func NewFlags(target, constraint, out string, seed int64) (*Flags, *config.Config) {
	c := config.New()

	if constraint == "" {
		constraint = target
	}

	return &Flags{
		out:        out,
		target:     target,
		constraint: constraint,
		seed:       seed,
	}, c
}

// parseCmdFlags gathers the target structure, out path, etc from a cobra
// cmd object. Returns Flags and a Config struct for derna.Design.
func parseCmdFlags(cmd *cobra.Command, args []string) (*Flags, *config.Config) {
	var err error
	fs := &Flags{} // parsed flags
	p := inputParser{}
	c := config.New()

	if fs.in, err = cmd.Flags().GetString("in"); err != nil {
		fs.in = ""
	}

	// the target structure is either an inline arg or read from the input file
	if len(args) > 0 {
		fs.target = strings.TrimSpace(args[0])
	} else if fs.in != "" {
		if fs.target, fs.constraint, err = p.parseStructureFile(fs.in); err != nil {
			stderr.Fatalln(err)
		}
	} else {
		cmd.Help()
		stderr.Fatalln("\nno target structure passed.")
	}

	if constraint, err := cmd.Flags().GetString("constraint"); err == nil && constraint != "" {
		fs.constraint = constraint
	}
	if fs.constraint == "" {
		fs.constraint = fs.target
	}

	if len(fs.constraint) != len(fs.target) {
		stderr.Fatalf(
			"constraint length (%d) does not match target structure length (%d)",
			len(fs.constraint),
			len(fs.target),
		)
	}

	if fs.out, err = cmd.Flags().GetString("out"); fs.out == "" || err != nil {
		fs.out = p.guessOutput(fs.in)
	}

	if fs.seed, err = cmd.Flags().GetInt64("seed"); err != nil || fs.seed == 0 {
		fs.seed = time.Now().UnixNano()
	}

	return fs, c
}

// parseStructureFile reads a target structure from a file: the first
// non-comment line is the target, an optional second line is the constraint.
// Lines starting with '>' or '#' are skipped.
func (p inputParser) parseStructureFile(path string) (target, constraint string, err error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to read structure file %s: %v", path, err)
	}

	var lines []string
	for _, line := range strings.Split(string(contents), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, ">") || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}

	if len(lines) == 0 {
		return "", "", fmt.Errorf("no target structure in %s", path)
	}

	target = lines[0]
	if len(lines) > 1 {
		constraint = lines[1]
	}

	return target, constraint, nil
}

// guessOutput gets an outpath path from an input path (if no output path is
// specified). It uses the same name as the input with a json file type.
func (p inputParser) guessOutput(in string) string {
	if in == "" {
		return "derna.json"
	}

	ext := filepath.Ext(in)
	return strings.TrimSuffix(in, ext) + ".json"
}
