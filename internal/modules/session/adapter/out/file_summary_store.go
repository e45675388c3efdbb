package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"breathe/internal/modules/session/domain"
	sessionout "breathe/internal/modules/session/port/out"
)

type FileSummaryStore struct {
	path string
}

func NewFileSummaryStore(dataPath string) sessionout.SummaryStore {
	return &FileSummaryStore{path: filepath.Join(dataPath, "summaries.json")}
}

type summaryRecord struct {
	ID            string `json:"id"`
	StartedAt     string `json:"started_at"`
	EndedAt       string `json:"ended_at"`
	Cycles        int    `json:"cycles"`
	TotalSeconds  int    `json:"total_seconds"`
	InhaleSeconds int    `json:"inhale_seconds"`
	HoldSeconds   int    `json:"hold_seconds"`
	ExhaleSeconds int    `json:"exhale_seconds"`
}

func (s *FileSummaryStore) Append(ctx context.Context, summary domain.Summary) error {
	summaries, err := s.List(ctx)
	if err != nil {
		return err
	}
	summaries = append(summaries, summary)
	return s.save(summaries)
}

// List recovers a missing or malformed blob as an empty log.
func (s *FileSummaryStore) List(_ context.Context) ([]domain.Summary, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.Summary{}, nil
		}
		return nil, fmt.Errorf("read summaries: %w", err)
	}
	var records []summaryRecord
	if err := json.Unmarshal(payload, &records); err != nil {
		return []domain.Summary{}, nil
	}
	summaries := make([]domain.Summary, 0, len(records))
	for _, r := range records {
		startedAt, err := time.Parse(time.RFC3339, r.StartedAt)
		if err != nil {
			continue
		}
		endedAt, err := time.Parse(time.RFC3339, r.EndedAt)
		if err != nil {
			continue
		}
		summaries = append(summaries, domain.Summary{
			ID:            r.ID,
			StartedAt:     startedAt.Local(),
			EndedAt:       endedAt.Local(),
			Cycles:        r.Cycles,
			TotalSeconds:  r.TotalSeconds,
			InhaleSeconds: r.InhaleSeconds,
			HoldSeconds:   r.HoldSeconds,
			ExhaleSeconds: r.ExhaleSeconds,
		})
	}
	return summaries, nil
}

func (s *FileSummaryStore) Clear(_ context.Context) error {
	return s.save(nil)
}

func (s *FileSummaryStore) save(summaries []domain.Summary) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create summaries dir: %w", err)
	}
	records := make([]summaryRecord, len(summaries))
	for i, sum := range summaries {
		records[i] = summaryRecord{
			ID:            sum.ID,
			StartedAt:     sum.StartedAt.Format(time.RFC3339),
			EndedAt:       sum.EndedAt.Format(time.RFC3339),
			Cycles:        sum.Cycles,
			TotalSeconds:  sum.TotalSeconds,
			InhaleSeconds: sum.InhaleSeconds,
			HoldSeconds:   sum.HoldSeconds,
			ExhaleSeconds: sum.ExhaleSeconds,
		}
	}
	payload, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal summaries: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("write summaries: %w", err)
	}
	return nil
}
