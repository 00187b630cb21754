// Command datadiff compares two JSON, YAML or TOML documents, or two texts,
// and prints a classified diff
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

// errDifferent is returned when --exit-code is set & the inputs differ. It
// sets the exit status without printing anything
var errDifferent = errors.New("inputs differ")

// globals are the persistent flags shared by every command, merged with the
// config file before a command runs
type globals struct {
	configPath string
	format     string
	color      bool
	stats      bool
	exitCode   bool
	verbose    bool

	cfg *config
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errDifferent) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	g := &globals{}

	root := &cobra.Command{
		Use:           "datadiff",
		Short:         "Classified diffs of structured data and text",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&g.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/datadiff/config.toml)")
	pf.StringVar(&g.format, "format", formatPretty, "output format: pretty or json")
	pf.BoolVar(&g.color, "color", false, "colorize pretty output")
	pf.BoolVar(&g.stats, "stats", false, "print change statistics")
	pf.BoolVar(&g.exitCode, "exit-code", false, "exit with status 1 when the inputs differ")
	pf.BoolVarP(&g.verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newObjectCmd(g))
	root.AddCommand(newListCmd(g))
	root.AddCommand(newTextCmd(g))
	root.AddCommand(newEqualCmd(g))

	return root
}

// setup configures logging, loads the config file & lets explicitly set
// flags override it
func (g *globals) setup(cmd *cobra.Command) error {
	log.SetOutput(cmd.ErrOrStderr())
	log.SetLevel(log.WarnLevel)
	if g.verbose {
		log.SetLevel(log.DebugLevel)
	}

	cfg, err := loadConfig(g.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Output.Format = g.format
	}
	if flags.Changed("color") {
		cfg.Output.Color = g.color
	}
	if flags.Changed("stats") {
		cfg.Output.Stats = g.stats
	}
	if err := validateFormat(cfg.Output.Format); err != nil {
		return err
	}

	g.cfg = cfg
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "datadiff "+version)
		},
	}
}

// checkInputs rejects reading both inputs from stdin
func checkInputs(args []string) error {
	if args[0] == stdinName && args[1] == stdinName {
		return errors.New("only one input can be read from stdin")
	}
	return nil
}
