package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/djlansom/chord-engine/constants"
	"github.com/djlansom/chord-engine/theory"
)

var scalesKey string

func init() {
	scalesCmd.Flags().StringVar(&scalesKey, "key", constants.DefaultKey, "key to spell scales in")
	rootCmd.AddCommand(scalesCmd)
}

var scalesCmd = &cobra.Command{
	Use:   "scales",
	Short: "Lists known scales",
	Long:  `Lists known scales`,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range theory.ScaleNames() {
			notes, err := theory.GetScaleNotes(scalesKey, name)
			if err != nil {
				return err
			}
			fmt.Printf("%-18v (%v) %v\n", name, len(notes), strings.Join(notes, " "))
		}
		return nil
	},
}
