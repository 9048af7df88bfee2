package stats

import (
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// ClassAccumulator aggregates the three latency metrics for one
// request class. Means come from exact running sums, never from the
// histograms; the histograms only back the percentile readouts shown
// in debug output.
type ClassAccumulator struct {
	count        int64
	sumResponse  int64
	sumWait      int64
	sumRoundTrip int64

	response  *hdrhistogram.Histogram
	wait      *hdrhistogram.Histogram
	roundTrip *hdrhistogram.Histogram
}

// NewClassAccumulator tracks values from 1ns up to 10 minutes with 3
// significant figures.
func NewClassAccumulator() *ClassAccumulator {
	max := int64(10 * time.Minute)
	return &ClassAccumulator{
		response:  hdrhistogram.New(1, max, 3),
		wait:      hdrhistogram.New(1, max, 3),
		roundTrip: hdrhistogram.New(1, max, 3),
	}
}

// Record adds one observed request.
func (a *ClassAccumulator) Record(responseTime, waitTime, roundTripTime int64) {
	a.count++
	a.sumResponse += responseTime
	a.sumWait += waitTime
	a.sumRoundTrip += roundTripTime

	// Out-of-range values are still counted in the exact sums above.
	_ = a.response.RecordValue(responseTime)
	_ = a.wait.RecordValue(waitTime)
	_ = a.roundTrip.RecordValue(roundTripTime)
}

func (a *ClassAccumulator) Count() int64 { return a.count }

// MeanResponse is sumResponse/count. Callers must guard count > 0.
func (a *ClassAccumulator) MeanResponse() float64 {
	return float64(a.sumResponse) / float64(a.count)
}

func (a *ClassAccumulator) MeanWait() float64 {
	return float64(a.sumWait) / float64(a.count)
}

func (a *ClassAccumulator) MeanRoundTrip() float64 {
	return float64(a.sumRoundTrip) / float64(a.count)
}

// P50Response and friends read the histograms for debug reporting.
func (a *ClassAccumulator) P50Response() int64 { return a.response.ValueAtQuantile(50) }
func (a *ClassAccumulator) P99Response() int64 { return a.response.ValueAtQuantile(99) }
func (a *ClassAccumulator) P99Wait() int64     { return a.wait.ValueAtQuantile(99) }
func (a *ClassAccumulator) MaxResponse() int64 { return a.response.Max() }
