package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/qri-io/datadiff"
)

func newTextCmd(g *globals) *cobra.Command {
	var (
		separation        string
		mode              string
		ignoreCase        bool
		ignorePunctuation bool
		locale            string
		literal           bool
	)

	cmd := &cobra.Command{
		Use:   "text PREV CURR",
		Short: "Compare two texts token by token",
		Long: `Compare two texts split into characters, words or sentences. PREV & CURR
are file paths, "-" reads stdin. With --strings they're the texts themselves.

visual mode aligns tokens by position and renders well. strict mode computes
a minimal edit script, reporting moves & in-place updates.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := g.cfg.Text
			flags := cmd.Flags()
			if flags.Changed("separation") {
				cfg.Separation = separation
			}
			if flags.Changed("mode") {
				cfg.Mode = mode
			}
			if flags.Changed("ignore-case") {
				cfg.IgnoreCase = ignoreCase
			}
			if flags.Changed("ignore-punctuation") {
				cfg.IgnorePunctuation = ignorePunctuation
			}
			if flags.Changed("locale") {
				cfg.Locale = locale
			}

			opts, err := textOptions(cfg)
			if err != nil {
				return err
			}

			prev, curr := args[0], args[1]
			if !literal {
				if err := checkInputs(args); err != nil {
					return err
				}
				if prev, err = readText(args[0], cmd.InOrStdin()); err != nil {
					return err
				}
				if curr, err = readText(args[1], cmd.InOrStdin()); err != nil {
					return err
				}
			}

			started := time.Now()
			stats := &datadiff.Stats{}
			res := datadiff.DiffText(prev, curr, append(opts, datadiff.OptionSetStats(stats))...)
			return g.writeResult(cmd, res, stats, started)
		},
	}

	cmd.Flags().StringVar(&separation, "separation", string(datadiff.SeparationWord), "token unit: character, word or sentence")
	cmd.Flags().StringVar(&mode, "mode", string(datadiff.ModeVisual), "alignment: visual or strict")
	cmd.Flags().BoolVar(&ignoreCase, "ignore-case", false, "compare tokens case-insensitively")
	cmd.Flags().BoolVar(&ignorePunctuation, "ignore-punctuation", false, "compare tokens with punctuation removed")
	cmd.Flags().StringVar(&locale, "locale", "", "BCP 47 locale used for case folding, eg: tr")
	cmd.Flags().BoolVar(&literal, "strings", false, "treat PREV & CURR as the texts to compare")

	return cmd
}

func textOptions(cfg textConfig) ([]datadiff.Option, error) {
	sep, err := datadiff.ParseSeparation(cfg.Separation)
	if err != nil {
		return nil, err
	}
	mode, err := datadiff.ParseMode(cfg.Mode)
	if err != nil {
		return nil, err
	}

	opts := []datadiff.Option{
		datadiff.OptionSeparation(sep),
		datadiff.OptionMode(mode),
	}
	if cfg.IgnoreCase {
		opts = append(opts, datadiff.OptionIgnoreCase())
	}
	if cfg.IgnorePunctuation {
		opts = append(opts, datadiff.OptionIgnorePunctuation())
	}
	if cfg.Locale != "" {
		opts = append(opts, datadiff.OptionLocale(cfg.Locale))
	}
	return opts, nil
}
