package stats

import "testing"

func TestAccumulatorExactMeans(t *testing.T) {
	a := NewClassAccumulator()
	a.Record(100, 10, 110)
	a.Record(200, 30, 230)

	if got := a.Count(); got != 2 {
		t.Fatalf("Count() = %d, want 2", got)
	}
	if got := a.MeanResponse(); got != 150 {
		t.Errorf("MeanResponse() = %v, want 150", got)
	}
	if got := a.MeanWait(); got != 20 {
		t.Errorf("MeanWait() = %v, want 20", got)
	}
	if got := a.MeanRoundTrip(); got != 170 {
		t.Errorf("MeanRoundTrip() = %v, want 170", got)
	}
}

func TestAccumulatorFractionalMean(t *testing.T) {
	a := NewClassAccumulator()
	a.Record(1, 1, 1)
	a.Record(2, 2, 2)

	if got := a.MeanResponse(); got != 1.5 {
		t.Errorf("MeanResponse() = %v, want 1.5", got)
	}
}

func TestAccumulatorPercentileOrdering(t *testing.T) {
	a := NewClassAccumulator()
	for i := int64(1); i <= 1000; i++ {
		a.Record(i*1000, i, i*1001)
	}

	if p50, p99 := a.P50Response(), a.P99Response(); p50 > p99 {
		t.Errorf("P50Response() = %d exceeds P99Response() = %d", p50, p99)
	}
	if a.MaxResponse() < a.P99Response() {
		t.Errorf("MaxResponse() = %d below P99Response() = %d", a.MaxResponse(), a.P99Response())
	}
}

func TestAccumulatorOutOfRangeStillCounted(t *testing.T) {
	a := NewClassAccumulator()
	// Beyond the 10 minute histogram bound; the exact sums must still
	// include it.
	huge := int64(3600_000_000_000)
	a.Record(huge, huge, huge)

	if got := a.Count(); got != 1 {
		t.Fatalf("Count() = %d, want 1", got)
	}
	if got := a.MeanResponse(); got != float64(huge) {
		t.Errorf("MeanResponse() = %v, want %v", got, float64(huge))
	}
}
