package main

import (
	"github.com/spf13/cobra"

	"github.com/Syrah0/swiftSet/core/config"
)

func newCountCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count FILE...",
		Short: "Count the values of all files into one histogram",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, e := a.loadAll(args)
			if e != nil {
				return e
			}
			if a.cfg.Normalize > 0 {
				h.Normalize(a.cfg.Normalize)
			}

			w := cmd.OutOrStdout()
			if a.cfg.Format == config.FormatJSON {
				return writeJSON(w, summary{Size: h.Size(), Total: h.Total(), Buckets: h})
			}
			return writeSummary(w, h, newPalette(w))
		},
	}
	cmd.Flags().Int("normalize", 0, "Rescale counts to sum to this total")
	return cmd
}
