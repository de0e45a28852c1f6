package main

import (
	"github.com/spf13/cobra"

	"github.com/Syrah0/swiftSet/core/config"
	"github.com/Syrah0/swiftSet/core/hist"
)

func newMergeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "merge FILE...",
		Short: "Count each file apart and merge the histograms",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var m *hist.Histogram[any]
			for _, f := range args {
				h, e := a.load(f)
				if e != nil {
					return e
				}
				if m == nil {
					m = h
				} else {
					m.Merge(h)
				}
			}

			w := cmd.OutOrStdout()
			if a.cfg.Format == config.FormatJSON {
				return writeJSON(w, m)
			}
			return writeBuckets(w, m, newPalette(w))
		},
	}
}
