package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"breathe/internal/modules/history/domain"
	historyout "breathe/internal/modules/history/port/out"
	"breathe/internal/platform/clock"
)

// FileLedgerStore keeps the ledger as one JSON blob. Loading upgrades
// legacy bare-string entries of the form "<phase> (<n>s)" to the
// structured record; that shim runs once at load, the saved form is
// always structured.
type FileLedgerStore struct {
	path  string
	clock clock.Clock
}

func NewFileLedgerStore(dataPath string, clock clock.Clock) historyout.LedgerStore {
	return &FileLedgerStore{path: filepath.Join(dataPath, "history.json"), clock: clock}
}

type entryRecord struct {
	Timestamp string `json:"timestamp"`
	Phase     string `json:"phase"`
	Seconds   int    `json:"seconds"`
}

var legacyEntry = regexp.MustCompile(`^(.+?) \(\d+s\)$`)

func (s *FileLedgerStore) Save(_ context.Context, entries []domain.Entry) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create ledger dir: %w", err)
	}
	records := make([]entryRecord, len(entries))
	for i, e := range entries {
		records[i] = entryRecord{Timestamp: e.Timestamp.Format(time.RFC3339), Phase: e.Phase, Seconds: e.Seconds}
	}
	payload, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal ledger: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("write ledger: %w", err)
	}
	return nil
}

// Load recovers from a missing or malformed blob with an empty ledger;
// a broken store must never stop the timer.
func (s *FileLedgerStore) Load(_ context.Context) ([]domain.Entry, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.Entry{}, nil
		}
		return nil, fmt.Errorf("read ledger: %w", err)
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(payload, &raw); err != nil {
		return []domain.Entry{}, nil
	}
	entries := make([]domain.Entry, 0, len(raw))
	for _, item := range raw {
		var legacy string
		if err := json.Unmarshal(item, &legacy); err == nil {
			entries = append(entries, s.upgradeLegacy(legacy))
			continue
		}
		var rec entryRecord
		if err := json.Unmarshal(item, &rec); err != nil {
			continue
		}
		ts, err := time.Parse(time.RFC3339, rec.Timestamp)
		if err != nil {
			continue
		}
		entries = append(entries, domain.Entry{Timestamp: ts.Local(), Phase: rec.Phase, Seconds: rec.Seconds})
	}
	return entries, nil
}

func (s *FileLedgerStore) upgradeLegacy(value string) domain.Entry {
	phase := strings.TrimSpace(value)
	if m := legacyEntry.FindStringSubmatch(phase); m != nil {
		phase = m[1]
	}
	return domain.NewEntry(s.clock.Now(), phase, 0)
}
