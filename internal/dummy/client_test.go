package dummy

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestRunWritesExpectedClassMix(t *testing.T) {
	out := filepath.Join(t.TempDir(), "fcfs_1us_10us_100_30_1")

	cfg := ClientConfig{
		NRequest:     100,
		SlowInterval: 10 * time.Microsecond,
		FastInterval: time.Microsecond,
		SlowPercent:  30,
		OutFile:      out,
	}
	if err := Run(cfg); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 100 {
		t.Fatalf("records = %d, want 100", len(lines))
	}

	slow := 0
	for i, line := range lines {
		parts := strings.Split(line, ";")
		if len(parts) != 4 {
			t.Fatalf("line %d = %q, want 4 fields", i+1, line)
		}
		class, err := strconv.Atoi(parts[0])
		if err != nil || (class != 0 && class != 1) {
			t.Fatalf("line %d class = %q, want 0 or 1", i+1, parts[0])
		}
		if class == 0 {
			slow++
		}
		for _, field := range parts[1:] {
			if _, err := strconv.ParseInt(field, 10, 64); err != nil {
				t.Fatalf("line %d field %q is not an integer", i+1, field)
			}
		}
	}

	if slow != 30 {
		t.Errorf("slow records = %d, want 30 (floor of 100 * 30%%)", slow)
	}
}

func TestRunRejectsNonPositiveRequestCount(t *testing.T) {
	err := Run(ClientConfig{NRequest: 0, OutFile: filepath.Join(t.TempDir(), "out")})
	if err == nil {
		t.Fatal("Run() should reject n-request = 0")
	}
}
