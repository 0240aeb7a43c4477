package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/ironsheep/color-tools-mcp/internal/colorutil"
)

type convertOptions struct {
	invert    bool
	grayscale string
	to        string
	preview   bool
}

func newConvertCmd(root *rootOptions) *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert <color>",
		Short: "Convert a color between hex, rgb and hsl",
		Long: `Parses a color in any supported notation and prints it as hex, rgb(a)
and hsl(a).

Supported input:
  #rrggbb, #rgb
  rgb(r, g, b), rgba(r, g, b, a)
  hsl(h, s%, l%), hsla(h, s%, l%, a)`,
		Example: `  color-mcp convert '#ff8000'
  color-mcp convert 'rgb(18, 52, 86)' --to hsl
  color-mcp convert '#ff0000' --grayscale average --preview`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			grayscale := cmd.Flags().Changed("grayscale")
			if grayscale && opts.grayscale == "" {
				cfg, err := root.load()
				if err != nil {
					return fmt.Errorf("failed to load config: %w", err)
				}
				opts.grayscale = cfg.GrayscaleMethod
			}
			return runConvert(cmd.OutOrStdout(), args[0], opts, grayscale)
		},
	}

	cmd.Flags().BoolVar(&opts.invert, "invert", false, "Invert the color before printing")
	cmd.Flags().StringVar(&opts.grayscale, "grayscale", "", "Reduce to gray with luminosity, average or lightness (empty uses the config default)")
	cmd.Flags().StringVar(&opts.to, "to", "", "Print only one form: hex, rgb or hsl")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "Render a terminal swatch of the result")

	return cmd
}

func runConvert(w io.Writer, text string, opts *convertOptions, grayscale bool) error {
	c, err := colorutil.Parse(text)
	if err != nil {
		return err
	}
	if opts.invert {
		c = colorutil.Invert(c)
	}
	if grayscale {
		method, err := colorutil.ParseGrayscaleMethod(opts.grayscale)
		if err != nil {
			return err
		}
		if c, err = colorutil.ToGrayscale(c, method); err != nil {
			return err
		}
	}

	hex := colorutil.FormatHex(c)
	switch opts.to {
	case "":
		fmt.Fprintf(w, "hex  %s\n", hex)
		fmt.Fprintf(w, "rgb  %s\n", colorutil.FormatRGB(c))
		fmt.Fprintf(w, "hsl  %s\n", colorutil.FormatHSL(colorutil.RGBToHSL(c)))
	case "hex":
		fmt.Fprintln(w, hex)
	case "rgb":
		fmt.Fprintln(w, colorutil.FormatRGB(c))
	case "hsl":
		fmt.Fprintln(w, colorutil.FormatHSL(colorutil.RGBToHSL(c)))
	default:
		return fmt.Errorf("unknown --to %q (want hex, rgb or hsl)", opts.to)
	}

	if opts.preview {
		fmt.Fprintln(w, swatch(hex))
	}
	return nil
}

// swatch renders a block filled with hex, bordered so it stays visible on
// terminals whose background matches the color.
func swatch(hex string) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Border(lipgloss.RoundedBorder()).
		Width(12).
		Height(3).
		Render("")
}
