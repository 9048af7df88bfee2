// Package dummy is a stand-in for the external load client. It honors
// the client's flag contract and writes a synthetic raw result file,
// so the orchestrator and the analysis pipeline can be exercised end
// to end without a server-under-test.
package dummy

import (
	"bufio"
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"
)

type ClientConfig struct {
	ServerAddr   string
	NRequest     int
	SlowInterval time.Duration
	FastInterval time.Duration
	SlowPercent  float64
	Concurrency  int
	OutFile      string
}

// Run writes NRequest synthetic records in the raw format
// class;response_time;wait_time;round_trip_time (nanoseconds).
// Slow records use the slow interval as a latency scale, fast records
// the fast interval, so aggregated output looks plausible.
func Run(cfg ClientConfig) error {
	if cfg.NRequest <= 0 {
		return fmt.Errorf("n-request must be positive, got %d", cfg.NRequest)
	}

	f, err := os.Create(cfg.OutFile)
	if err != nil {
		return fmt.Errorf("cannot create result file %q: %w", cfg.OutFile, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	nSlow := int(math.Floor(float64(cfg.NRequest) * cfg.SlowPercent / 100))
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	for i := 0; i < cfg.NRequest; i++ {
		class := 1
		scale := cfg.FastInterval.Nanoseconds()
		if i < nSlow {
			class = 0
			scale = cfg.SlowInterval.Nanoseconds()
		}
		if scale <= 0 {
			scale = int64(time.Microsecond)
		}

		rt := scale + rng.Int63n(scale)
		wt := rng.Int63n(scale)
		rtt := rt + wt
		if _, err := fmt.Fprintf(w, "%d;%d;%d;%d\n", class, rt, wt, rtt); err != nil {
			return fmt.Errorf("cannot write result file %q: %w", cfg.OutFile, err)
		}
	}
	return w.Flush()
}
