package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	json "github.com/goccy/go-json"
	isatty "github.com/mattn/go-isatty"
	"github.com/pkg/errors"

	"github.com/Syrah0/swiftSet/core/hist"
)

// palette colours keys and counts when w is a terminal.
type palette struct {
	key, count *color.Color
}

func newPalette(w io.Writer) *palette {
	p := &palette{
		key:   color.New(color.Bold, color.FgCyan),
		count: color.New(color.FgGreen),
	}
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		p.key.EnableColor()
		p.count.EnableColor()
	} else {
		p.key.DisableColor()
		p.count.DisableColor()
	}
	return p
}

func writeJSON(w io.Writer, v any) error {
	b, e := json.Marshal(v)
	if e != nil {
		return errors.Wrap(e, "JSON encoding failed")
	}
	_, e = fmt.Fprintf(w, "%s\n", b)
	return e
}

func comma(n int) string {
	return humanize.Comma(int64(n))
}

// writeBuckets prints one line per bucket of h, in first-seen order,
// followed by the keyified histogram.
func writeBuckets(w io.Writer, h hist.Hist[any], p *palette) error {
	e := h.ForEach(func(b hist.Bucket[any]) error {
		_, e := fmt.Fprintf(w, "%s  %s\n", p.count.Sprintf("%8s", comma(b.Count)), p.key.Sprint(b.Key))
		return e
	})
	if e != nil {
		return e
	}
	_, e = fmt.Fprintln(w, h.Keyify())
	return e
}

type summary struct {
	Size    int                  `json:"size"`
	Total   int                  `json:"total"`
	Buckets *hist.Histogram[any] `json:"buckets"`
}

// writeSummary prints the statistics of h and its buckets ranked by
// count, each with its relative frequency.
func writeSummary(w io.Writer, h *hist.Histogram[any], p *palette) error {
	minmax := func(n int, ok bool) string {
		if !ok {
			return "-"
		}
		return comma(n)
	}
	fmt.Fprintf(w, "size:  %s\n", comma(h.Size()))
	fmt.Fprintf(w, "total: %s\n", comma(h.Total()))
	fmt.Fprintf(w, "min:   %s\n", minmax(h.Min()))
	fmt.Fprintf(w, "max:   %s\n", minmax(h.Max()))
	for _, b := range h.Ranked() {
		fmt.Fprintf(w, "%s  %s  %s\n",
			p.count.Sprintf("%8s", comma(b.Count)),
			p.key.Sprint(b.Key),
			h.Frequency(b.Value).StringFixed(3))
	}
	_, e := fmt.Fprintln(w, h.Keyify())
	return e
}

// writeMembers prints the keys of the members of a set operation's
// result, one per line.
func writeMembers(w io.Writer, h *hist.Histogram[any], p *palette) error {
	var e error
	h.Each(func(v any, _ int, _ string) bool {
		_, e = fmt.Fprintln(w, p.key.Sprint(h.KeyOf(v)))
		return e != nil
	})
	return e
}
