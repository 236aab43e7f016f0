package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wesen/vents/internal/survey"
)

// countReport is the --json form of `vents count`.
type countReport struct {
	Source string `json:"source"`
	survey.Result
	Stats survey.Stats `json:"stats"`
}

func newCountCmd(o *options) *cobra.Command {
	f := &inputFlags{}
	cmd := &cobra.Command{
		Use:   "count [file]",
		Short: "Count overlap points for straight and all segments",
		Long: `Draw the straight segments, count the points covered more than once,
then add the diagonal segments to the same grid and count again.`,
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
			res := s.Run()
			st := s.Stats()

			w := cmd.OutOrStdout()
			if o.jsonOut {
				return outputJSON(w, countReport{Source: in.source, Result: res, Stats: st})
			}
			printSuccess(w, fmt.Sprintf("%d segments from %s on a %dx%d grid", st.Segments, in.source, st.LenX, st.LenY))
			printLabelValue(w, "straight", res.Straight)
			printLabelValue(w, "all", res.All)
			return nil
		},
	}
	f.register(cmd, false)
	return cmd
}
