// Package storage persists bench run history in a local bolt database.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"
)

const bucketRuns = "runs"

// Run is one recorded sweep execution.
type Run struct {
	ID         string        `json:"id"`
	StartedAt  time.Time     `json:"started_at"`
	Algorithm  string        `json:"algorithm"`
	ServerAddr string        `json:"server_addr"`
	OutputDir  string        `json:"output_dir"`
	Points     int           `json:"points"`
	Completed  int           `json:"completed"`
	Failed     int           `json:"failed"`
	Elapsed    time.Duration `json:"elapsed"`
}

type Store struct {
	db *bbolt.DB
}

// Open uses the default history location, ~/.schedbench/history.db.
func Open() (*Store, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".schedbench")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return OpenAt(filepath.Join(dir, "history.db"))
}

// OpenAt opens (or creates) a history database at path.
func OpenAt(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("cannot open history database %q: %w", path, err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketRuns))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Save stores one run, keyed by start time so iteration order is
// chronological.
func (s *Store) Save(run Run) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucketRuns))

		key := []byte(fmt.Sprintf("%020d_%s", run.StartedAt.UnixNano(), run.ID))
		data, err := json.Marshal(run)
		if err != nil {
			return err
		}
		return b.Put(key, data)
	})
}

// List returns runs newest first.
func (s *Store) List() ([]Run, error) {
	var runs []Run
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucketRuns))
		c := b.Cursor()

		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			var run Run
			if err := json.Unmarshal(v, &run); err != nil {
				return fmt.Errorf("corrupt history entry %q: %w", k, err)
			}
			runs = append(runs, run)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return runs, nil
}
