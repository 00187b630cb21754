package main

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/qri-io/datadiff"
)

func newObjectCmd(g *globals) *cobra.Command {
	var (
		ignoreOrder bool
		showOnly    []string
		granularity string
	)

	cmd := &cobra.Command{
		Use:   "object PREV CURR",
		Short: "Compare two keyed records key by key",
		Long: `Compare two keyed records, recursing into nested records. Inputs are
JSON, YAML or TOML files, detected by extension. "-" reads stdin.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkInputs(args); err != nil {
				return err
			}

			cfg := g.cfg.Object
			flags := cmd.Flags()
			if flags.Changed("ignore-array-order") {
				cfg.IgnoreArrayOrder = ignoreOrder
			}
			if flags.Changed("show-only") {
				cfg.ShowOnly = showOnly
			}
			if flags.Changed("granularity") {
				cfg.Granularity = granularity
			}

			opts, err := objectOptions(cfg)
			if err != nil {
				return err
			}

			prev, err := readRecord(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			curr, err := readRecord(args[1], cmd.InOrStdin())
			if err != nil {
				return err
			}

			started := time.Now()
			stats := &datadiff.Stats{}
			res := datadiff.DiffObject(prev, curr, append(opts, datadiff.OptionSetStats(stats))...)
			return g.writeResult(cmd, res, stats, started)
		},
	}

	cmd.Flags().BoolVar(&ignoreOrder, "ignore-array-order", false, "compare sequences regardless of element order")
	cmd.Flags().StringSliceVar(&showOnly, "show-only", nil, "only show entries with these statuses: added,deleted,updated,equal")
	cmd.Flags().StringVar(&granularity, "granularity", string(datadiff.GranularityBasic), "how --show-only treats nested keys: basic or deep")

	return cmd
}

func objectOptions(cfg objectConfig) ([]datadiff.Option, error) {
	statuses, err := parseStatuses(cfg.ShowOnly)
	if err != nil {
		return nil, errors.Wrap(err, "show-only")
	}
	g, err := datadiff.ParseGranularity(cfg.Granularity)
	if err != nil {
		return nil, err
	}

	opts := []datadiff.Option{datadiff.OptionGranularity(g)}
	if cfg.IgnoreArrayOrder {
		opts = append(opts, datadiff.OptionIgnoreArrayOrder())
	}
	if len(statuses) > 0 {
		opts = append(opts, datadiff.OptionShowOnly(statuses...))
	}
	return opts, nil
}
