package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/qri-io/datadiff"
)

// statsResult is the json output shape when --stats is set
type statsResult struct {
	Result datadiff.Result `json:"result"`
	Stats  *datadiff.Stats `json:"stats"`
}

// writeResult prints a diff in the configured format, returning
// errDifferent when --exit-code is set & the diff isn't equal
func (g *globals) writeResult(cmd *cobra.Command, res datadiff.Result, stats *datadiff.Stats, started time.Time) error {
	log.WithFields(log.Fields{
		"type":    res.DiffType(),
		"status":  res.DiffStatus(),
		"elapsed": time.Since(started),
	}).Debug("computed diff")

	out := cmd.OutOrStdout()
	switch g.cfg.Output.Format {
	case formatJSON:
		var v interface{} = res
		if g.cfg.Output.Stats {
			v = statsResult{Result: res, Stats: stats}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, "encoding result")
		}
	default:
		if err := datadiff.FormatPretty(out, res, g.cfg.Output.Color); err != nil {
			return errors.Wrap(err, "formatting result")
		}
		if g.cfg.Output.Stats {
			s := datadiff.FormatPrettyStats(stats)
			if g.cfg.Output.Color {
				s = datadiff.FormatPrettyStatsColor(stats)
			}
			if _, err := fmt.Fprint(out, s); err != nil {
				return err
			}
		}
	}

	if g.exitCode && res.DiffStatus() != datadiff.StatusEqual {
		return errDifferent
	}
	return nil
}
