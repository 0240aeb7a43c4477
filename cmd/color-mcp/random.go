package main

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/ironsheep/color-tools-mcp/internal/colorutil"
)

type randomOptions struct {
	count int
	seed  uint64
	rgb   bool
}

func newRandomCmd() *cobra.Command {
	opts := &randomOptions{}

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Print random colors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var gen *colorutil.Generator
			if cmd.Flags().Changed("seed") {
				gen = colorutil.NewGenerator(rand.NewPCG(opts.seed, opts.seed))
			} else {
				gen = colorutil.NewGenerator(nil)
			}
			return runRandom(cmd.OutOrStdout(), gen, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.count, "count", "n", 1, "Number of colors to print")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "Seed for reproducible output")
	cmd.Flags().BoolVar(&opts.rgb, "rgb", false, "Print rgb(r, g, b) instead of hex")

	return cmd
}

func runRandom(w io.Writer, gen *colorutil.Generator, opts *randomOptions) error {
	if opts.count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", opts.count)
	}
	for i := 0; i < opts.count; i++ {
		if opts.rgb {
			fmt.Fprintln(w, colorutil.FormatRGB(gen.RandomRGB()))
		} else {
			fmt.Fprintln(w, gen.RandomHex())
		}
	}
	return nil
}
