// Package resultfile maps a sweep point to its raw result filename and
// back. The filename is the only persisted link between a result file
// and the parameters that produced it, so Encode and Decode must be
// strict inverses.
package resultfile

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// Delimiter joins the six filename fields.
const Delimiter = "_"

// Header is the summary CSV column schema shared by analyze and merge.
var Header = []string{
	"alg",
	"fast_int",
	"slow_int",
	"tot_request",
	"slow_percent",
	"concurrency",
	"avg_slow_rt",
	"avg_slow_wt",
	"avg_slow_rtt",
	"avg_fast_rt",
	"avg_fast_wt",
	"avg_fast_rtt",
}

// Params identifies one benchmark invocation. Fast and slow tokens
// keep their unit suffix (e.g. "250us") exactly as passed to the
// client.
type Params struct {
	Algorithm   string
	FastToken   string
	SlowToken   string
	TotRequests int64
	SlowPercent int64
	Concurrency int
}

// Filename encodes the params into a flat result filename:
// <alg>_<fast>_<slow>_<tot>_<percent>_<concurrency>.
func (p Params) Filename() string {
	return strings.Join([]string{
		p.Algorithm,
		p.FastToken,
		p.SlowToken,
		strconv.FormatInt(p.TotRequests, 10),
		strconv.FormatInt(p.SlowPercent, 10),
		strconv.Itoa(p.Concurrency),
	}, Delimiter)
}

// Identity is a decoded filename. Interval values have their unit
// suffix stripped.
type Identity struct {
	Algorithm   string
	FastValue   int64
	SlowValue   int64
	TotRequests int64
	SlowPercent int64
	Concurrency int
}

// MalformedFilenameError reports a result filename that does not
// decode into the expected six fields.
type MalformedFilenameError struct {
	Name   string
	Reason string
}

func (e *MalformedFilenameError) Error() string {
	return fmt.Sprintf("malformed result filename %q: %s", e.Name, e.Reason)
}

// Decode parses a result file path. Directory-qualified names are
// normalized to their base name before splitting.
func Decode(path string) (Identity, error) {
	name := filepath.Base(path)

	parts := strings.Split(name, Delimiter)
	if len(parts) != 6 {
		return Identity{}, &MalformedFilenameError{
			Name:   name,
			Reason: fmt.Sprintf("want 6 fields separated by %q, got %d", Delimiter, len(parts)),
		}
	}

	fast, err := stripUnit(parts[1])
	if err != nil {
		return Identity{}, &MalformedFilenameError{Name: name, Reason: fmt.Sprintf("fast interval: %v", err)}
	}
	slow, err := stripUnit(parts[2])
	if err != nil {
		return Identity{}, &MalformedFilenameError{Name: name, Reason: fmt.Sprintf("slow interval: %v", err)}
	}
	tot, err := strconv.ParseInt(parts[3], 10, 64)
	if err != nil {
		return Identity{}, &MalformedFilenameError{Name: name, Reason: fmt.Sprintf("total requests %q is not an integer", parts[3])}
	}
	percent, err := strconv.ParseInt(parts[4], 10, 64)
	if err != nil {
		return Identity{}, &MalformedFilenameError{Name: name, Reason: fmt.Sprintf("slow percent %q is not an integer", parts[4])}
	}
	concurrency, err := strconv.Atoi(parts[5])
	if err != nil {
		return Identity{}, &MalformedFilenameError{Name: name, Reason: fmt.Sprintf("concurrency %q is not an integer", parts[5])}
	}

	return Identity{
		Algorithm:   parts[0],
		FastValue:   fast,
		SlowValue:   slow,
		TotRequests: tot,
		SlowPercent: percent,
		Concurrency: concurrency,
	}, nil
}

// unitSuffixes in match order; "s" last so it never shadows the
// two-letter suffixes.
var unitSuffixes = []string{"ns", "us", "ms", "s"}

func stripUnit(token string) (int64, error) {
	if v, err := strconv.ParseInt(token, 10, 64); err == nil {
		return v, nil
	}
	for _, suffix := range unitSuffixes {
		rest, ok := strings.CutSuffix(token, suffix)
		if !ok {
			continue
		}
		v, err := strconv.ParseInt(rest, 10, 64)
		if err == nil {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%q is not an integer with an optional ns/us/ms/s suffix", token)
}
