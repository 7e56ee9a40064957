// Package cli implements the uf2status host simulator commands.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"uf2status/internal/buildinfo"
	"uf2status/internal/config"
	"uf2status/internal/logging"
)

type globalOptions struct {
	configPath string
	logLevel   string
	logFormat  string
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	g := &globalOptions{}
	root := &cobra.Command{
		Use:           "uf2status",
		Short:         "Simulate a UF2 bootloader's status LED and screen",
		Version:       buildinfo.Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&g.configPath, "config", "c", "", "Board profile (.toml, .yaml or .yml)")
	pf.StringVar(&g.logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides the profile")
	pf.StringVar(&g.logFormat, "log-format", "", "Log format (text, json); overrides the profile")

	root.AddCommand(newRunCmd(g), newRenderCmd(g), newStatesCmd(), newVersionCmd())
	return root
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "uf2status:", err)
		os.Exit(1)
	}
}

// loadBoard reads the profile, if any, and initializes logging from it.
func (g *globalOptions) loadBoard(flags *pflag.FlagSet, stderr io.Writer) (config.Board, error) {
	b := config.Default()
	if g.configPath != "" {
		var err error
		b, err = config.Load(g.configPath)
		if err != nil {
			return config.Board{}, err
		}
	}
	lc := b.Logging
	if flags.Changed("log-level") {
		lc.Level = g.logLevel
	}
	if flags.Changed("log-format") {
		lc.Format = g.logFormat
	}
	lc.Output = stderr
	logging.Initialize(lc)
	return b, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "uf2status %s (commit %s, built %s)\n",
				buildinfo.Short(), buildinfo.Commit, buildinfo.Date)
		},
	}
}
