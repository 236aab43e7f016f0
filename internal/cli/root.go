// Package cli implements the vents command line.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/wesen/vents/internal/config"
)

var version = "dev"

// SetVersion sets the version reported by --version and `vents version`.
func SetVersion(v string) {
	if v == "" {
		return
	}
	version = v
}

// options holds the global flags and the state derived from them before
// any subcommand runs.
type options struct {
	verbose bool
	jsonOut bool
	color   string

	cfg *config.Config
	log *slog.Logger
}

// newRootCmd builds the full command tree. Each call returns fresh flag
// state.
func newRootCmd() *cobra.Command {
	o := &options{}

	root := &cobra.Command{
		Use:     "vents",
		Version: version,
		Short:   "Count where hydrothermal vent lines overlap",
		Long: `vents draws vent line segments onto a lattice and counts the points
covered by more than one line.

Input holds one segment per line, written "x0,y0 -> x1,y1". A file given
by name is also looked up under $VENTS_INPUT_DIR.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.setup(cmd)
		},
	}
	root.SetVersionTemplate("{{.Version}}\n")

	root.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "Log survey progress to stderr")
	root.PersistentFlags().BoolVar(&o.jsonOut, "json", false, "Output in JSON format")
	root.PersistentFlags().StringVar(&o.color, "color", "", "Styled output: auto, always or never (default $VENTS_COLOR or auto)")

	root.AddGroup(&cobra.Group{ID: "survey", Title: "Survey:"})

	for _, c := range []*cobra.Command{
		newCountCmd(o),
		newRenderCmd(o),
		newPNGCmd(o),
		newViewCmd(o),
	} {
		c.GroupID = "survey"
		root.AddCommand(c)
	}

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the vents version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	})

	return root
}

// setup loads the configuration, applies the colour mode and builds the
// logger.
func (o *options) setup(cmd *cobra.Command) error {
	cfg, err := config.Default()
	if err != nil {
		return err
	}
	if o.color != "" {
		mode, err := config.ParseColorMode(o.color)
		if err != nil {
			return err
		}
		cfg.Color = mode
	}
	o.cfg = cfg

	switch cfg.Color {
	case config.ColorAlways:
		color.NoColor = false
	case config.ColorNever:
		color.NoColor = true
	}

	if o.verbose {
		o.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
	} else {
		o.log = slog.New(slog.DiscardHandler)
	}
	return nil
}

// styled reports whether text output should carry terminal styling.
func (o *options) styled() bool {
	switch o.cfg.Color {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return !color.NoColor
	}
}

// Execute runs the vents command line.
func Execute() error {
	return newRootCmd().Execute()
}
