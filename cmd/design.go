package cmd

import (
	"github.com/HosnaJabbari/derna/internal/derna"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// designCmd represents the design command
var designCmd = &cobra.Command{
	Use:   "design [target structure]",
	Short: "Design RNA sequences against a target dot-bracket structure",
	Long: `Search for RNA sequences whose predicted fold matches a target secondary
structure, passed inline in dot-bracket notation or via an input file

Each generation, candidate sequences are mutated from the best designs found so
far and folded twice with the external engine: once under the structure
constraint and once unconstrained. Candidates are ranked by the free energy of
their unconstrained fold, then by the energy of their constrained fold, and the
top designs are written to the output file as JSON`,
	Run: derna.DesignCmd,
}

func init() {
	rootCmd.AddCommand(designCmd)

	// Flags for specifying the paths to the input and output files
	designCmd.Flags().StringP("in", "i", "", "Input file with the target structure <dot-bracket>")
	designCmd.Flags().StringP("out", "o", "", "Output file name for ranked candidate designs")
	designCmd.Flags().StringP("constraint", "c", "", "Structure constraint for restricted folds (defaults to the target)")
	designCmd.Flags().Int64P("seed", "s", 0, "Random seed for the search; 0 seeds from the current time")

	// Search settings, overriding those in config
	designCmd.Flags().IntP("population", "p", 0, "Number of candidate sequences evaluated per generation")
	designCmd.Flags().IntP("generations", "g", 0, "Number of generations to run the search for")
	designCmd.Flags().IntP("keep", "k", 0, "Number of top candidates to keep and report")

	// Bind the parameters to viper
	viper.BindPFlag("design.population", designCmd.Flags().Lookup("population"))
	viper.BindPFlag("design.generations", designCmd.Flags().Lookup("generations"))
	viper.BindPFlag("design.keep", designCmd.Flags().Lookup("keep"))
}
