// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

// Render writes r as a table: one row per sample with the wall time and the
// achieved GFLOP/s, followed by the nominal operation count.
func (r Report) Render(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s inverse, n=%s, total FLOPs: %s (%s)\n",
		r.Kind, humanize.Comma(int64(r.Size)), humanize.Comma(r.FLOPs),
		humanize.SIWithDigits(float64(r.FLOPs), 2, "FLOP")); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header("run", "ns", "seconds", "GFLOP/s")
	for _, s := range r.Samples {
		row := []string{
			strconv.Itoa(s.Run),
			humanize.Comma(s.Elapsed.Nanoseconds()),
			strconv.FormatFloat(s.Elapsed.Seconds(), 'f', 6, 64),
			strconv.FormatFloat(s.GFLOPS(r.FLOPs), 'f', 6, 64),
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}

	return table.Render()
}

// Best returns the fastest sample, or false when r has none.
func (r Report) Best() (Sample, bool) {
	if len(r.Samples) == 0 {
		return Sample{}, false
	}
	best := r.Samples[0]
	for _, s := range r.Samples[1:] {
		if s.Elapsed < best.Elapsed {
			best = s
		}
	}

	return best, true
}
