package engine

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"

	staxerrors "stax.dev/stax/internal/errors"
)

// Store persists the tracker as rows of (child, parent, base, rebaseBase) in
// a comma-delimited flat file. A missing file reads as an empty tree; saves
// replace the file atomically.
type Store struct {
	path string
}

// NewStore creates a store backed by the given file path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path
func (s *Store) Path() string {
	return s.path
}

// Load reads the branch file and builds a tracker from it
func (s *Store) Load() (*Tracker, error) {
	tracker := NewTracker()

	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return tracker, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open branch file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = 4

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, staxerrors.NewCorruptStateError("", err.Error())
		}

		child, parent, base, rebaseBase := row[0], row[1], row[2], row[3]
		if _, ok := tracker.childToParent[child]; ok {
			return nil, staxerrors.NewCorruptStateError(child, "duplicate entry")
		}
		if base == "" {
			return nil, staxerrors.NewCorruptStateError(child, "missing base commit")
		}

		tracker.childToParent[child] = parent
		tracker.parentToChildren[parent] = append(tracker.parentToChildren[parent], child)
		if rebaseBase != "" {
			tracker.branchToBases[child] = []string{base, rebaseBase}
		} else {
			tracker.branchToBases[child] = []string{base}
		}
	}

	return tracker, nil
}

// Save writes all rows to a temporary file next to the real one, then
// atomically replaces the real file. A crash mid-write leaves either the
// previous file or the new complete one, never a partial file.
func (s *Store) Save(tracker *Tracker) error {
	tracker.mu.RLock()
	defer tracker.mu.RUnlock()

	children := make([]string, 0, len(tracker.childToParent))
	for child := range tracker.childToParent {
		children = append(children, child)
	}
	sort.Strings(children)

	tmpPath := s.path + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to create temporary branch file: %w", err)
	}

	writer := csv.NewWriter(f)
	for _, child := range children {
		bases, ok := tracker.branchToBases[child]
		if !ok || len(bases) == 0 {
			f.Close()
			return fmt.Errorf("branch %s has no base record", child)
		}
		rebaseBase := ""
		if len(bases) == 2 {
			rebaseBase = bases[1]
		}
		if err := writer.Write([]string{child, tracker.childToParent[child], bases[0], rebaseBase}); err != nil {
			f.Close()
			return fmt.Errorf("failed to write branch file: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		f.Close()
		return fmt.Errorf("failed to write branch file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close temporary branch file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("failed to replace branch file: %w", err)
	}
	return nil
}
