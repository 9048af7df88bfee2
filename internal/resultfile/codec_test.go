package resultfile

import (
	"errors"
	"strings"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		want   Identity
	}{
		{
			name:   "interval tokens with unit",
			params: Params{Algorithm: "fcfs", FastToken: "250us", SlowToken: "300us", TotRequests: 5000, SlowPercent: 20, Concurrency: 8},
			want:   Identity{Algorithm: "fcfs", FastValue: 250, SlowValue: 300, TotRequests: 5000, SlowPercent: 20, Concurrency: 8},
		},
		{
			name:   "bare tokens without unit",
			params: Params{Algorithm: "drr", FastToken: "100", SlowToken: "400", TotRequests: 100, SlowPercent: 50, Concurrency: 1},
			want:   Identity{Algorithm: "drr", FastValue: 100, SlowValue: 400, TotRequests: 100, SlowPercent: 50, Concurrency: 1},
		},
		{
			name:   "millisecond and second suffixes",
			params: Params{Algorithm: "fcfs", FastToken: "5ms", SlowToken: "2s", TotRequests: 10, SlowPercent: 10, Concurrency: 4},
			want:   Identity{Algorithm: "fcfs", FastValue: 5, SlowValue: 2, TotRequests: 10, SlowPercent: 10, Concurrency: 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name := tt.params.Filename()
			got, err := Decode(name)
			if err != nil {
				t.Fatalf("Decode(%q) error: %v", name, err)
			}
			if got != tt.want {
				t.Errorf("Decode(Encode()) = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFilenameLayout(t *testing.T) {
	p := Params{Algorithm: "fcfs", FastToken: "250us", SlowToken: "300us", TotRequests: 5000, SlowPercent: 20, Concurrency: 8}

	if got, want := p.Filename(), "fcfs_250us_300us_5000_20_8"; got != want {
		t.Errorf("Filename() = %q, want %q", got, want)
	}
}

func TestDecodeNormalizesDirectoryPrefix(t *testing.T) {
	got, err := Decode("results/run1/fcfs_250us_300us_5000_20_8")
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if got.Algorithm != "fcfs" {
		t.Errorf("Algorithm = %q, want bare label %q", got.Algorithm, "fcfs")
	}
}

func TestDecodeTokenCountMismatch(t *testing.T) {
	tests := []string{
		"fcfs_250us_300us_5000_20",
		"fcfs_250us_300us_5000_20_8_extra",
		"fcfs",
	}

	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(name)
			var malformed *MalformedFilenameError
			if !errors.As(err, &malformed) {
				t.Fatalf("Decode(%q) error = %v, want *MalformedFilenameError", name, err)
			}
			if !strings.Contains(err.Error(), name) {
				t.Errorf("error %q should name the offending filename", err)
			}
		})
	}
}

func TestDecodeRejectsNonNumericFields(t *testing.T) {
	tests := []struct {
		name string
		file string
	}{
		{"bad interval", "fcfs_fast_300us_5000_20_8"},
		{"bad total", "fcfs_250us_300us_many_20_8"},
		{"bad percent", "fcfs_250us_300us_5000_x_8"},
		{"bad concurrency", "fcfs_250us_300us_5000_20_x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.file)
			var malformed *MalformedFilenameError
			if !errors.As(err, &malformed) {
				t.Fatalf("Decode(%q) error = %v, want *MalformedFilenameError", tt.file, err)
			}
		})
	}
}
