package analyze

import (
	"errors"
	"fmt"
)

// ErrNoInputFiles is returned by Merge when the input list is empty.
var ErrNoInputFiles = errors.New("no input files provided")

// ClassName labels the two request classes in user-facing errors.
func ClassName(class int) string {
	if class == 0 {
		return "slow"
	}
	return "fast"
}

// EmptyBucketError reports a result file with zero observations for
// one request class. Means are undefined for that class, so the file
// fails explicitly instead of producing NaN.
type EmptyBucketError struct {
	File  string
	Class int
}

func (e *EmptyBucketError) Error() string {
	return fmt.Sprintf("%s: no %s (class %d) records, cannot compute means", e.File, ClassName(e.Class), e.Class)
}

// MalformedRecordError reports a raw line that does not parse into
// four integer fields.
type MalformedRecordError struct {
	File string
	Line int
	Text string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("%s:%d: malformed record %q: want class;response_time;wait_time;round_trip_time", e.File, e.Line, e.Text)
}

// SchemaMismatchError reports an input summary file whose header does
// not match the header of the first merged file.
type SchemaMismatchError struct {
	File string
	Want string
	Got  string
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("%s: header %q does not match expected schema %q", e.File, e.Got, e.Want)
}

// FileError pairs a failed input file with its error so a batch run
// can enumerate failures at the end instead of aborting.
type FileError struct {
	Path string
	Err  error
}

func (e FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}
