package cmd

import (
	"github.com/HosnaJabbari/derna/internal/derna"
	"github.com/spf13/cobra"
)

// foldCmd represents the fold command
var foldCmd = &cobra.Command{
	Use:   "fold [sequence]",
	Short: "Fold a single RNA sequence with the external engine",
	Long: `Fold one RNA sequence and print its predicted structure, free energy and
ensemble free energy. With a structure constraint, the restricted fold is
reported alongside the unconstrained one`,
	Run: derna.FoldCmd,
}

func init() {
	rootCmd.AddCommand(foldCmd)

	foldCmd.Flags().StringP("constraint", "c", "", "Structure constraint for a restricted fold <dot-bracket>")
}
