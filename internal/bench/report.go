package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
)

// WriteTable prints the report as an aligned table, followed by the
// cross-check verdict. Colors are only emitted when color is true.
func (r *Report) WriteTable(out io.Writer, color bool) error {
	au := aurora.NewAurora(color)

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "n\talgorithm\ttrials\tmean\tstddev\tmedian\thull size\t")
	for _, row := range r.Rows {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\t%s\t%.1f\t\n",
			row.N, row.Algorithm, row.Trials, row.Mean, row.StdDev, row.Median, row.HullSize)
	}
	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "writing table")
	}

	if len(r.Mismatches) == 0 {
		_, err := fmt.Fprintln(out, au.Green("cross-check: all hulls match"))
		return errors.Wrap(err, "writing table")
	}
	if _, err := fmt.Fprintln(out, au.Red(fmt.Sprintf("cross-check: %d mismatches", len(r.Mismatches)))); err != nil {
		return errors.Wrap(err, "writing table")
	}
	for _, m := range r.Mismatches {
		fmt.Fprintf(out, "  n=%d trial=%d: divide-and-conquer %v, naive %v\n", m.N, m.Trial, m.Divided, m.Expected)
	}
	return nil
}

var csvHeader = []string{"n", "algorithm", "trials", "mean_ns", "stddev_ns", "median_ns", "hull_size"}

func (r *Report) WriteCSV(out io.Writer) error {
	w := csv.NewWriter(out)
	if err := w.Write(csvHeader); err != nil {
		return errors.Wrap(err, "writing csv")
	}
	for _, row := range r.Rows {
		record := []string{
			strconv.Itoa(row.N),
			row.Algorithm,
			strconv.Itoa(row.Trials),
			strconv.FormatInt(row.Mean.Nanoseconds(), 10),
			strconv.FormatInt(row.StdDev.Nanoseconds(), 10),
			strconv.FormatInt(row.Median.Nanoseconds(), 10),
			strconv.FormatFloat(row.HullSize, 'f', 2, 64),
		}
		if err := w.Write(record); err != nil {
			return errors.Wrap(err, "writing csv")
		}
	}
	w.Flush()
	return errors.Wrap(w.Error(), "writing csv")
}
