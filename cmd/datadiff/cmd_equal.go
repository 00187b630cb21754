package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/qri-io/datadiff"
)

func newEqualCmd(g *globals) *cobra.Command {
	var ignoreOrder bool

	cmd := &cobra.Command{
		Use:   "equal PREV CURR",
		Short: "Check two documents are deeply equal",
		Long: `Print "equal" or "different" and exit with status 1 when the documents
differ. Inputs are JSON, YAML or TOML files, detected by extension. "-" reads
stdin.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkInputs(args); err != nil {
				return err
			}
			a, err := readDocument(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			b, err := readDocument(args[1], cmd.InOrStdin())
			if err != nil {
				return err
			}

			// equal shares the object section of the config file
			ignore := g.cfg.Object.IgnoreArrayOrder
			if cmd.Flags().Changed("ignore-array-order") {
				ignore = ignoreOrder
			}
			var opts []datadiff.Option
			if ignore {
				opts = append(opts, datadiff.OptionIgnoreArrayOrder())
			}
			eq := datadiff.Equal(a, b, opts...)
			log.WithField("equal", eq).Debug("compared documents")

			if eq {
				fmt.Fprintln(cmd.OutOrStdout(), "equal")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "different")
			return errDifferent
		},
	}

	cmd.Flags().BoolVar(&ignoreOrder, "ignore-array-order", false, "compare sequences regardless of element order")

	return cmd
}
