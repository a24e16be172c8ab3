package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chord-engine",
	Short: "Turing Machine chord progression generator",
	Long:  `Generates evolving chord progressions by driving a mutating shift register through diatonic harmony.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
