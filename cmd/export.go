package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/djlansom/chord-engine/midi"
	"github.com/djlansom/chord-engine/rhythm"
)

var exportFlags struct {
	out         string
	pattern     string
	beatsPerBar int
	bpm         float64
}

func init() {
	f := exportCmd.Flags()
	f.StringVarP(&exportFlags.out, "out", "o", "progression.mid", "output .mid path")
	f.StringVar(&exportFlags.pattern, "pattern", "1", "rhythm pattern (chords per bar, 0 holds)")
	f.IntVar(&exportFlags.beatsPerBar, "beats-per-bar", 4, "meter")
	f.Float64Var(&exportFlags.bpm, "bpm", 120, "tempo")
	registerGenerateFlags(f)
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Writes a progression to a Standard MIDI File",
	Long:  `Writes a progression to a Standard MIDI File`,
	RunE: func(cmd *cobra.Command, args []string) error {
		chords, state, err := runGenerate()
		if err != nil {
			return err
		}

		pattern, err := rhythm.ParsePattern(exportFlags.pattern)
		if err != nil {
			return err
		}
		durations, err := rhythm.ExpandPattern(pattern, exportFlags.beatsPerBar)
		if err != nil {
			return err
		}

		if err := midi.WriteProgressionFile(exportFlags.out, chords, durations, exportFlags.bpm); err != nil {
			return err
		}
		fmt.Printf("Wrote %v chords to %v (register state 0x%04X)\n",
			len(chords), exportFlags.out, state.RegisterState)
		return nil
	},
}
