package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	progressout "breathe/internal/modules/progress/port/out"
)

type FileCounterStore struct {
	path string
}

func NewFileCounterStore(dataPath string) progressout.CounterStore {
	return &FileCounterStore{path: filepath.Join(dataPath, "progress.json")}
}

func (s *FileCounterStore) Save(_ context.Context, counts map[string]int) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create progress dir: %w", err)
	}
	payload, err := json.MarshalIndent(counts, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("write progress: %w", err)
	}
	return nil
}

// Load recovers a missing or malformed blob as an empty map.
func (s *FileCounterStore) Load(_ context.Context) (map[string]int, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]int{}, nil
		}
		return nil, fmt.Errorf("read progress: %w", err)
	}
	counts := map[string]int{}
	if err := json.Unmarshal(payload, &counts); err != nil {
		return map[string]int{}, nil
	}
	return counts, nil
}
