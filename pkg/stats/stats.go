// Package stats tracks routing decision counts and persists them as a
// human-readable JSON file.
package stats

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Tally is the running count of routing decisions.
type Tally struct {
	TotalRoutes int            `json:"total_routes"`
	ByAgent     map[string]int `json:"by_agent"`
	ByTaskType  map[string]int `json:"by_task_type"`
}

// NewTally returns an empty tally.
func NewTally() *Tally {
	return &Tally{
		ByAgent:    make(map[string]int),
		ByTaskType: make(map[string]int),
	}
}

// Record counts one routing decision against an agent and a task type.
func (t *Tally) Record(agent, taskType string) {
	if t.ByAgent == nil {
		t.ByAgent = make(map[string]int)
	}
	if t.ByTaskType == nil {
		t.ByTaskType = make(map[string]int)
	}
	t.TotalRoutes++
	t.ByAgent[agent]++
	t.ByTaskType[taskType]++
}

// Store loads and saves a tally.
type Store interface {
	Load() (*Tally, error)
	Save(*Tally) error
}

// FileStore persists the tally as indented JSON at Path.
type FileStore struct {
	Path string
}

// NewFileStore creates a file store at the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load reads the tally from disk. A missing or unparsable file yields an
// empty tally, never an error.
func (s *FileStore) Load() (*Tally, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return NewTally(), nil
	}

	var tally Tally
	if err := json.Unmarshal(data, &tally); err != nil {
		return NewTally(), nil
	}
	if tally.ByAgent == nil {
		tally.ByAgent = make(map[string]int)
	}
	if tally.ByTaskType == nil {
		tally.ByTaskType = make(map[string]int)
	}
	return &tally, nil
}

// Save writes the tally to disk, creating parent directories as needed.
func (s *FileStore) Save(tally *Tally) error {
	data, err := json.MarshalIndent(tally, "", "  ")
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return os.WriteFile(s.Path, data, 0644)
}

// MemStore keeps the tally in memory. Useful for tests and embedding.
type MemStore struct {
	tally *Tally
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{tally: NewTally()}
}

// Load returns the stored tally.
func (s *MemStore) Load() (*Tally, error) {
	if s.tally == nil {
		s.tally = NewTally()
	}
	return s.tally, nil
}

// Save replaces the stored tally.
func (s *MemStore) Save(tally *Tally) error {
	s.tally = tally
	return nil
}
