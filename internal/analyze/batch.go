package analyze

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Directory aggregates every regular file under dir with at most
// concurrency files in flight. A file that fails to aggregate is
// collected into the failure list and does not stop the batch; rows
// come back sorted by source filename so output is deterministic.
func Directory(ctx context.Context, dir string, concurrency int, opts Options) ([]*Summary, []FileError, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot read input directory %q: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && entry.Type().IsRegular() {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}

	if concurrency < 1 {
		concurrency = 1
	}

	var (
		mu       sync.Mutex
		rows     []*Summary
		failures []FileError
	)
	byRow := make(map[*Summary]string, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			row, err := Aggregate(file, opts)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures = append(failures, FileError{Path: file, Err: err})
				return nil
			}
			rows = append(rows, row)
			byRow[row] = file
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	sort.Slice(rows, func(i, j int) bool { return byRow[rows[i]] < byRow[rows[j]] })
	sort.Slice(failures, func(i, j int) bool { return failures[i].Path < failures[j].Path })

	return rows, failures, nil
}
