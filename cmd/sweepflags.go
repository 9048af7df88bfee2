package cmd

import (
	"github.com/spf13/cobra"

	"schedbench/internal/sweep"
)

// sweepFlags is the shared flag set describing the four sweep
// dimensions, used by both the workload and bench commands.
type sweepFlags struct {
	maxRequests  int
	requestSteps int

	minInterval       int
	maxInterval       int
	intervalIncrement int
	intervalSpacing   string
	intervalSteps     int
	unit              string

	minSlowPercent       int
	maxSlowPercent       int
	slowPercentIncrement int
}

func (f *sweepFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.maxRequests, "max-requests", 10000, "Maximum number of requests to send")
	cmd.Flags().IntVar(&f.requestSteps, "request-steps", 5, "Number of request-count steps from zero to max-requests (zero excluded)")

	cmd.Flags().IntVar(&f.minInterval, "min-interval", 100, "Minimum time between two requests")
	cmd.Flags().IntVar(&f.maxInterval, "max-interval", 500, "Maximum time between two requests (exclusive for linear spacing)")
	cmd.Flags().IntVar(&f.intervalIncrement, "interval-increment", 100, "Increment of interval time (linear spacing)")
	cmd.Flags().StringVar(&f.intervalSpacing, "interval-spacing", "linear", "Spacing of interval values: linear or geometric")
	cmd.Flags().IntVar(&f.intervalSteps, "interval-steps", 5, "Number of interval values (geometric spacing)")
	cmd.Flags().StringVar(&f.unit, "unit", "us", "Unit suffix for interval values: ns, us, ms or s")

	cmd.Flags().IntVar(&f.minSlowPercent, "min-slow-percent", 10, "Minimum percent of slow requests")
	cmd.Flags().IntVar(&f.maxSlowPercent, "max-slow-percent", 50, "Maximum percent of slow requests (exclusive)")
	cmd.Flags().IntVar(&f.slowPercentIncrement, "slow-percent-increment", 10, "Increment of slow request percent")
}

// space builds the sweep definition from the flags. Total requests are
// count-based with the zero-load point excluded; intervals are either
// a linear step range (stop exclusive) or a geometric count range.
func (f *sweepFlags) space() (sweep.Space, error) {
	unit, err := sweep.ParseUnit(f.unit)
	if err != nil {
		return sweep.Space{}, err
	}
	spacing, err := sweep.ParseSpacing(f.intervalSpacing)
	if err != nil {
		return sweep.Space{}, err
	}
	if spacing == sweep.SpacingLinspace {
		return sweep.Space{}, &sweep.ConfigurationError{
			Field:  "interval-spacing",
			Value:  f.intervalSpacing,
			Reason: "interval values support linear or geometric spacing",
		}
	}

	interval := func(name string) sweep.Dimension {
		return sweep.Dimension{
			Name:    name,
			Start:   float64(f.minInterval),
			Stop:    float64(f.maxInterval),
			Step:    float64(f.intervalIncrement),
			Count:   f.intervalSteps,
			Spacing: spacing,
			Unit:    unit,
		}
	}

	return sweep.Space{
		TotRequests: sweep.Dimension{
			Name:      "tot_requests",
			Start:     0,
			Stop:      float64(f.maxRequests),
			Count:     f.requestSteps,
			Spacing:   sweep.SpacingLinspace,
			DropFirst: true,
		},
		SlowInterval: interval("slow_interval"),
		FastInterval: interval("fast_interval"),
		SlowPercent: sweep.Dimension{
			Name:    "slow_percent",
			Start:   float64(f.minSlowPercent),
			Stop:    float64(f.maxSlowPercent),
			Step:    float64(f.slowPercentIncrement),
			Spacing: sweep.SpacingLinear,
		},
	}, nil
}
