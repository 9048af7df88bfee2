package analyze

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"schedbench/internal/resultfile"
)

// WriteCSV renders summary rows using the shared schema, semicolon
// delimited with no quoting.
func WriteCSV(w io.Writer, rows []*Summary, opts Options) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write(resultfile.Header); err != nil {
		return fmt.Errorf("cannot write header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write(row.record(opts)); err != nil {
			return fmt.Errorf("cannot write row for %s: %w", row.Algorithm, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func (s *Summary) record(opts Options) []string {
	return []string{
		s.Algorithm,
		strconv.FormatInt(s.FastValue, 10),
		strconv.FormatInt(s.SlowValue, 10),
		strconv.FormatInt(s.TotRequests, 10),
		strconv.FormatInt(s.SlowPercent, 10),
		strconv.Itoa(s.Concurrency),
		formatMean(s.AvgSlowResponse, opts),
		formatMean(s.AvgSlowWait, opts),
		formatMean(s.AvgSlowRoundTrip, opts),
		formatMean(s.AvgFastResponse, opts),
		formatMean(s.AvgFastWait, opts),
		formatMean(s.AvgFastRoundTrip, opts),
	}
}

// formatMean renders a mean with the shortest exact representation and
// applies the configured decimal-separator policy.
func formatMean(v float64, opts Options) string {
	out := strconv.FormatFloat(v, 'f', -1, 64)
	if opts.CommaDecimals {
		out = strings.Replace(out, ".", ",", 1)
	}
	return out
}
