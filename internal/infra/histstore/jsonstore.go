// Package histstore persists conversion history as JSON artifacts plus a
// JSONL index under the workspace history directory.
package histstore

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aalvaropc/toolbelt/internal/domain"
	"github.com/aalvaropc/toolbelt/internal/ports"
)

const defaultHistoryDir = "history"
const maskValue = "********"
const indexFile = "index.jsonl"

type JSONStore struct {
	rootDir        string
	historyDirName string
	maskingEnabled bool
	now            func() time.Time
}

type Option func(*JSONStore)

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

func NewJSONStore(root string, cfg domain.Config, opts ...Option) *JSONStore {
	dir := cfg.Paths.HistoryDir
	if strings.TrimSpace(dir) == "" {
		dir = defaultHistoryDir
	}

	s := &JSONStore{
		rootDir:        root,
		historyDirName: dir,
		maskingEnabled: cfg.History.Masking,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.HistoryStore = (*JSONStore)(nil)

func (s *JSONStore) SaveRecord(rec domain.HistoryRecord) (string, error) {
	dir := filepath.Join(s.rootDir, s.historyDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "histstore.save",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	if s.maskingEnabled {
		rec.InputPreview = maskValue
		rec.Options = maskOptions(rec.Options)
	}

	name := fmt.Sprintf("%s-%s.json", s.now().UTC().Format("20060102T150405"), shortID(rec.ID))
	path := filepath.Join(dir, name)

	b, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "histstore.save",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}
	if err := os.WriteFile(path, b, 0o600); err != nil {
		return "", &domain.OpError{
			Op:   "histstore.save",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if err := s.appendIndex(dir, rec); err != nil {
		return "", err
	}

	return rec.ID, nil
}

func (s *JSONStore) ListRecords(limit int) ([]domain.HistoryRecord, error) {
	path := filepath.Join(s.rootDir, s.historyDirName, indexFile)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &domain.OpError{
			Op:   "histstore.list",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	defer func() { _ = f.Close() }()

	var recs []domain.HistoryRecord
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var rec domain.HistoryRecord
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			// Skip corrupt lines rather than losing the whole history.
			continue
		}
		recs = append(recs, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, &domain.OpError{
			Op:   "histstore.list",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	// Newest first.
	for i, j := 0, len(recs)-1; i < j; i, j = i+1, j-1 {
		recs[i], recs[j] = recs[j], recs[i]
	}
	if limit > 0 && len(recs) > limit {
		recs = recs[:limit]
	}
	return recs, nil
}

func (s *JSONStore) appendIndex(dir string, rec domain.HistoryRecord) error {
	path := filepath.Join(dir, indexFile)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return &domain.OpError{
			Op:   "histstore.index",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	defer func() { _ = f.Close() }()

	line, err := json.Marshal(rec)
	if err != nil {
		return &domain.OpError{
			Op:   "histstore.index",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}
	if _, err := f.Write(append(line, '\n')); err != nil {
		return &domain.OpError{
			Op:   "histstore.index",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	return nil
}

func maskOptions(opts map[string]string) map[string]string {
	if len(opts) == 0 {
		return opts
	}
	masked := make(map[string]string, len(opts))
	for k := range opts {
		masked[k] = maskValue
	}
	return masked
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
