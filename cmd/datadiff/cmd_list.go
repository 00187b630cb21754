package main

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/qri-io/datadiff"
)

func newListCmd(g *globals) *cobra.Command {
	var (
		ignoreOrder  bool
		showOnly     []string
		referenceKey string
		moveAsUpdate bool
	)

	cmd := &cobra.Command{
		Use:   "list PREV CURR",
		Short: "Compare two lists element by element",
		Long: `Compare two lists, reporting each element as equal, moved, updated, added
or deleted. Inputs are JSON, YAML or TOML files, detected by extension. "-"
reads stdin.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkInputs(args); err != nil {
				return err
			}

			cfg := g.cfg.List
			flags := cmd.Flags()
			if flags.Changed("ignore-array-order") {
				cfg.IgnoreArrayOrder = ignoreOrder
			}
			if flags.Changed("show-only") {
				cfg.ShowOnly = showOnly
			}
			if flags.Changed("reference-key") {
				cfg.ReferenceKey = referenceKey
			}
			if flags.Changed("move-as-update") {
				cfg.MoveAsUpdate = moveAsUpdate
			}

			opts, err := listOptions(cfg)
			if err != nil {
				return err
			}

			prev, err := readList(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			curr, err := readList(args[1], cmd.InOrStdin())
			if err != nil {
				return err
			}

			started := time.Now()
			stats := &datadiff.Stats{}
			res := datadiff.DiffList(prev, curr, append(opts, datadiff.OptionSetStats(stats))...)
			return g.writeResult(cmd, res, stats, started)
		},
	}

	cmd.Flags().BoolVar(&ignoreOrder, "ignore-array-order", false, "match elements regardless of position")
	cmd.Flags().StringSliceVar(&showOnly, "show-only", nil, "only show entries with these statuses: added,deleted,updated,moved,equal")
	cmd.Flags().StringVar(&referenceKey, "reference-key", "", "match record elements on the value of this key")
	cmd.Flags().BoolVar(&moveAsUpdate, "move-as-update", false, "report moved elements as updated")

	return cmd
}

func listOptions(cfg listConfig) ([]datadiff.Option, error) {
	statuses, err := parseStatuses(cfg.ShowOnly)
	if err != nil {
		return nil, errors.Wrap(err, "show-only")
	}

	var opts []datadiff.Option
	if cfg.IgnoreArrayOrder {
		opts = append(opts, datadiff.OptionIgnoreArrayOrder())
	}
	if len(statuses) > 0 {
		opts = append(opts, datadiff.OptionShowOnly(statuses...))
	}
	if cfg.ReferenceKey != "" {
		opts = append(opts, datadiff.OptionReferenceKey(cfg.ReferenceKey))
	}
	if cfg.MoveAsUpdate {
		opts = append(opts, datadiff.OptionConsiderMoveAsUpdate())
	}
	return opts, nil
}
