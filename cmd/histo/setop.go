package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Syrah0/swiftSet/core/config"
	"github.com/Syrah0/swiftSet/core/hist"
)

func newSetOpCmd(a *app, name, short string,
	op func(h, o *hist.Histogram[any]) *hist.Histogram[any]) *cobra.Command {
	return &cobra.Command{
		Use:   name + " A B",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, o, e := a.loadPair(args)
			if e != nil {
				return e
			}
			r := op(h, o)

			w := cmd.OutOrStdout()
			if a.cfg.Format == config.FormatJSON {
				return writeJSON(w, r.Values())
			}
			return writeMembers(w, r, newPalette(w))
		},
	}
}

func newEqualCmd(a *app) *cobra.Command {
	var counts bool
	cmd := &cobra.Command{
		Use:   "equal A B",
		Short: "Print whether A and B have the same members",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, o, e := a.loadPair(args)
			if e != nil {
				return e
			}
			eq := h.SameMembers(o)
			if counts {
				eq = h.Equals(o)
			}
			_, e = fmt.Fprintln(cmd.OutOrStdout(), eq)
			return e
		},
	}
	cmd.Flags().BoolVar(&counts, "counts", false, "Also require equal counts")
	return cmd
}

func (a *app) loadPair(args []string) (h, o *hist.Histogram[any], e error) {
	if h, e = a.load(args[0]); e != nil {
		return nil, nil, e
	}
	if o, e = a.load(args[1]); e != nil {
		return nil, nil, e
	}
	return h, o, nil
}
