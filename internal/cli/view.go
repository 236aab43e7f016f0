package cli

import (
	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/wesen/vents/internal/ventui"
)

func newViewCmd(o *options) *cobra.Command {
	f := &inputFlags{}
	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Explore the overlap grid interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := o.load(cmd, f, args)
			if err != nil {
				return err
			}
			s, err := o.newSurvey(f, in)
			if err != nil {
				return err
			}
			p := tea.NewProgram(ventui.NewModel(s, s.Run()))
			_, err = p.Run()
			return err
		},
	}
	f.register(cmd, false)
	return cmd
}
