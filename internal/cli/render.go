package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wesen/vents/internal/heatmap"
)

func newRenderCmd(o *options) *cobra.Command {
	f := &inputFlags{}
	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Print the overlap diagram",
		Long: `Print one character per lattice point: '.' for none, the count for 1
through 9, '+' above that.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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
			styles := heatmap.Styles
			if !o.styled() {
				styles = nil
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), heatmap.Text(g, styles))
			return err
		},
	}
	f.register(cmd, true)
	return cmd
}
