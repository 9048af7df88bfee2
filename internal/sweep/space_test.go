package sweep

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func testSpace() Space {
	return Space{
		TotRequests: Dimension{
			Name: "tot_requests", Start: 0, Stop: 10000, Count: 5,
			Spacing: SpacingLinspace, DropFirst: true,
		},
		SlowInterval: Dimension{
			Name: "slow_interval", Start: 100, Stop: 500, Step: 100,
			Spacing: SpacingLinear, Unit: UnitMicrosecond,
		},
		FastInterval: Dimension{
			Name: "fast_interval", Start: 100, Stop: 500, Step: 100,
			Spacing: SpacingLinear, Unit: UnitMicrosecond,
		},
		SlowPercent: Dimension{
			Name: "slow_percent", Start: 10, Stop: 50, Step: 10,
			Spacing: SpacingLinear,
		},
	}
}

func TestGenerateCardinality(t *testing.T) {
	set, err := testSpace().Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	// 4 request counts x 4 slow intervals x 4 fast intervals x 4 percents.
	if got, want := len(set.Workload), 4*4*4*4; got != want {
		t.Fatalf("len(Workload) = %d, want %d", got, want)
	}
}

func TestGenerateProductOrdering(t *testing.T) {
	set, err := testSpace().Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	first := Point{TotRequests: 2500, SlowInterval: "100us", FastInterval: "100us", SlowPercent: 10}
	if set.Workload[0] != first {
		t.Errorf("Workload[0] = %+v, want %+v", set.Workload[0], first)
	}

	// The last dimension (slow percent) varies fastest.
	second := Point{TotRequests: 2500, SlowInterval: "100us", FastInterval: "100us", SlowPercent: 20}
	if set.Workload[1] != second {
		t.Errorf("Workload[1] = %+v, want %+v", set.Workload[1], second)
	}

	// The first dimension (total requests) varies slowest: one full
	// block of the remaining three dimensions sits between changes.
	block := 4 * 4 * 4
	if set.Workload[block].TotRequests != 5000 {
		t.Errorf("Workload[%d].TotRequests = %d, want 5000", block, set.Workload[block].TotRequests)
	}

	last := Point{TotRequests: 10000, SlowInterval: "400us", FastInterval: "400us", SlowPercent: 40}
	if set.Workload[len(set.Workload)-1] != last {
		t.Errorf("last point = %+v, want %+v", set.Workload[len(set.Workload)-1], last)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := testSpace().Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	b, err := testSpace().Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if !reflect.DeepEqual(a, b) {
		t.Error("identical spaces should generate identical sets")
	}
}

func TestSetRoundTrip(t *testing.T) {
	set, err := testSpace().Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "workload.json")
	if err := set.WriteFile(path); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	// The persisted form is an object with a fixed top-level key.
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	var shape map[string]json.RawMessage
	if err := json.Unmarshal(raw, &shape); err != nil {
		t.Fatalf("output is not a JSON object: %v", err)
	}
	if _, ok := shape["workload"]; !ok {
		t.Fatal(`output object should have a "workload" key`)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !reflect.DeepEqual(loaded, set) {
		t.Error("loaded set differs from written set")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("Load() of a missing file should fail")
	}
}
