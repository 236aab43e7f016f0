package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wesen/vents/internal/heatmap"
)

func newPNGCmd(o *options) *cobra.Command {
	f := &inputFlags{}
	var (
		output string
		scale  int
	)
	cmd := &cobra.Command{
		Use:   "png [file]",
		Short: "Write the overlap counts as a PNG heatmap",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if scale < 1 || scale > heatmap.MaxScale {
				return fmt.Errorf("--scale %d outside 1..%d", scale, heatmap.MaxScale)
			}
			in, err := o.load(cmd, f, args)
			if err != nil {
				return err
			}
			s, err := o.newSurvey(f, in)
			if err != nil {
				return err
			}
			g, err := patternGrid(s, f.pattern)
			if err != nil {
				return err
			}

			out, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create %s: %w", output, err)
			}
			if err := heatmap.WritePNG(out, g, scale); err != nil {
				out.Close()
				return err
			}
			if err := out.Close(); err != nil {
				return fmt.Errorf("close %s: %w", output, err)
			}
			printSuccess(cmd.OutOrStdout(), fmt.Sprintf("wrote %s (%dx%d px)", output, g.LenX()*scale, g.LenY()*scale))
			return nil
		},
	}
	f.register(cmd, true)
	cmd.Flags().StringVarP(&output, "output", "o", "", "PNG file to write")
	cmd.Flags().IntVar(&scale, "scale", 4, fmt.Sprintf("Pixels per lattice point (1-%d)", heatmap.MaxScale))
	_ = cmd.MarkFlagRequired("output")
	return cmd
}
