// Package analyze turns raw per-request result files into per-class
// summary rows and merges summary CSVs into one table.
package analyze

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"schedbench/internal/resultfile"
	"schedbench/internal/stats"
)

// Options control aggregation output.
type Options struct {
	// CommaDecimals renders mean values with a comma decimal
	// separator, the regional CSV convention the original pipeline
	// used. Off by default.
	CommaDecimals bool

	Debug bool

	// Warnf receives non-fatal per-record issues (unknown class).
	// Nil means warnings are dropped.
	Warnf func(format string, args ...any)
}

func (o Options) warnf(format string, args ...any) {
	if o.Warnf != nil {
		o.Warnf(format, args...)
	}
}

// Summary is one aggregated row: the decoded identity of a result
// file plus the per-class mean of each latency metric.
type Summary struct {
	resultfile.Identity

	AvgSlowResponse  float64
	AvgSlowWait      float64
	AvgSlowRoundTrip float64
	AvgFastResponse  float64
	AvgFastWait      float64
	AvgFastRoundTrip float64

	Slow *stats.ClassAccumulator
	Fast *stats.ClassAccumulator
}

// Aggregate streams one raw result file and produces its summary row.
// Lines are class;response_time;wait_time;round_trip_time. Records
// with an unknown class are warned about and skipped; an unparseable
// line aborts the file with a MalformedRecordError; a class with zero
// records aborts the file with an EmptyBucketError.
func Aggregate(path string, opts Options) (*Summary, error) {
	id, err := resultfile.Decode(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open result file %q: %w", path, err)
	}
	defer f.Close()

	slow := stats.NewClassAccumulator()
	fast := stats.NewClassAccumulator()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}

		class, rt, wt, rtt, err := parseRecord(line)
		if err != nil {
			return nil, &MalformedRecordError{File: path, Line: lineNo, Text: line}
		}

		switch class {
		case 0:
			slow.Record(rt, wt, rtt)
		case 1:
			fast.Record(rt, wt, rtt)
		default:
			opts.warnf("%s:%d: unknown request class %d, record skipped", path, lineNo, class)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read result file %q: %w", path, err)
	}

	if slow.Count() == 0 {
		return nil, &EmptyBucketError{File: path, Class: 0}
	}
	if fast.Count() == 0 {
		return nil, &EmptyBucketError{File: path, Class: 1}
	}

	return &Summary{
		Identity:         id,
		AvgSlowResponse:  slow.MeanResponse(),
		AvgSlowWait:      slow.MeanWait(),
		AvgSlowRoundTrip: slow.MeanRoundTrip(),
		AvgFastResponse:  fast.MeanResponse(),
		AvgFastWait:      fast.MeanWait(),
		AvgFastRoundTrip: fast.MeanRoundTrip(),
		Slow:             slow,
		Fast:             fast,
	}, nil
}

func parseRecord(line string) (class int, rt, wt, rtt int64, err error) {
	parts := strings.Split(line, ";")
	if len(parts) != 4 {
		return 0, 0, 0, 0, fmt.Errorf("want 4 fields, got %d", len(parts))
	}
	class, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, 0, err
	}
	rt, err = strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	wt, err = strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	rtt, err = strconv.ParseInt(parts[3], 10, 64)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	return class, rt, wt, rtt, nil
}
