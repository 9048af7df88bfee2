package sweep

import (
	"encoding/json"
	"fmt"
	"os"
)

// Point is one concrete workload combination. Interval fields carry
// their unit suffix so they can be handed to the load client as
// duration flags unchanged.
type Point struct {
	TotRequests  int64  `json:"tot_requests"`
	SlowInterval string `json:"slow_interval"`
	FastInterval string `json:"fast_interval"`
	SlowPercent  int64  `json:"slow_percent"`
}

// Set is an ordered workload, persisted as {"workload": [...]}.
type Set struct {
	Workload []Point `json:"workload"`
}

// Space holds the four sweep dimensions in product order: total
// requests vary slowest, slow percent fastest.
type Space struct {
	TotRequests  Dimension
	SlowInterval Dimension
	FastInterval Dimension
	SlowPercent  Dimension
}

// Generate materializes every dimension and takes the full cross
// product. Identical Spaces always yield identical, identically
// ordered Sets.
func (s Space) Generate() (*Set, error) {
	requests, err := s.TotRequests.Values()
	if err != nil {
		return nil, err
	}
	slow, err := s.SlowInterval.Tokens()
	if err != nil {
		return nil, err
	}
	fast, err := s.FastInterval.Tokens()
	if err != nil {
		return nil, err
	}
	percent, err := s.SlowPercent.Values()
	if err != nil {
		return nil, err
	}

	set := &Set{Workload: make([]Point, 0, len(requests)*len(slow)*len(fast)*len(percent))}
	for _, n := range requests {
		for _, si := range slow {
			for _, fi := range fast {
				for _, p := range percent {
					set.Workload = append(set.Workload, Point{
						TotRequests:  n,
						SlowInterval: si,
						FastInterval: fi,
						SlowPercent:  p,
					})
				}
			}
		}
	}
	return set, nil
}

// WriteFile persists the set as JSON.
func (s *Set) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create workload file %q: %w", path, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(s); err != nil {
		return fmt.Errorf("cannot write workload file %q: %w", path, err)
	}
	return nil
}

// Load reads a previously generated workload set.
func Load(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open workload file %q: %w", path, err)
	}
	defer f.Close()

	var set Set
	if err := json.NewDecoder(f).Decode(&set); err != nil {
		return nil, fmt.Errorf("cannot parse workload file %q: %w", path, err)
	}
	return &set, nil
}
