package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/djlansom/chord-engine/constants"
	"github.com/djlansom/chord-engine/model"
	"github.com/djlansom/chord-engine/progression"
)

var generateFlags struct {
	key      string
	scale    string
	voicing  string
	mode     string
	length   int
	mutation float64
	seed     int
	count    int
}

// registerGenerateFlags binds the shared generation flags; the export
// command reuses them on its own flag set.
func registerGenerateFlags(f *pflag.FlagSet) {
	f.StringVar(&generateFlags.key, "key", constants.DefaultKey, "key to generate in")
	f.StringVar(&generateFlags.scale, "scale", constants.DefaultScale, "scale name")
	f.StringVar(&generateFlags.voicing, "voicing", constants.DefaultVoicing, "voicing level (triads|sevenths|extensions|altered)")
	f.StringVar(&generateFlags.mode, "mode", constants.DefaultMode, "generation mode (raw|smooth)")
	f.IntVar(&generateFlags.length, "length", constants.DefaultLoopLength, "register loop length (2-16)")
	f.Float64Var(&generateFlags.mutation, "mutation", constants.DefaultMutation, "mutation probability (0-1)")
	f.IntVar(&generateFlags.seed, "seed", -1, "16-bit register seed (-1 for random)")
	f.IntVar(&generateFlags.count, "count", constants.DefaultCount, "number of chords")
}

func init() {
	registerGenerateFlags(generateCmd.Flags())
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Prints a chord progression",
	Long:  `Prints a chord progression`,
	RunE: func(cmd *cobra.Command, args []string) error {
		chords, state, err := runGenerate()
		if err != nil {
			return err
		}
		printProgression(chords, state)
		return nil
	},
}

func generateOptions() progression.Options {
	opts := progression.DefaultOptions()
	opts.Key = generateFlags.key
	opts.Scale = generateFlags.scale
	opts.Voicing = generateFlags.voicing
	opts.Mode = generateFlags.mode
	opts.Length = generateFlags.length
	opts.Mutation = generateFlags.mutation
	opts.Seed = generateFlags.seed
	return opts
}

func runGenerate() ([]model.Chord, model.GeneratorState, error) {
	gen, err := progression.NewGenerator(generateOptions())
	if err != nil {
		return nil, model.GeneratorState{}, err
	}
	chords, err := gen.Generate(generateFlags.count)
	if err != nil {
		return nil, model.GeneratorState{}, err
	}
	return chords, gen.State(), nil
}

func printProgression(chords []model.Chord, state model.GeneratorState) {
	fmt.Printf("%v %v, %v voicing, %v mode (loop %v, mutation %.2f)\n\n",
		state.Key, state.Scale, state.Voicing, state.Mode, state.Length, state.Mutation)
	for i, c := range chords {
		mark := " "
		if c.Mutated {
			mark = "*"
		}
		fmt.Printf("%2d. %-8v %-5v %-10v %v [%v]\n",
			i+1, c.Symbol, c.Roman, c.Category, mark, strings.Join(c.Notes, " "))
	}
	fmt.Printf("\nregister state: 0x%04X\n", state.RegisterState)
}
