package histstore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aalvaropc/toolbelt/internal/domain"
)

func testConfig(masking bool) domain.Config {
	cfg := domain.DefaultConfig()
	cfg.History.Masking = masking
	return cfg
}

func testRecord(id string) domain.HistoryRecord {
	return domain.HistoryRecord{
		ID:           id,
		Tool:         domain.ToolBase64,
		StartedAt:    time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
		EndedAt:      time.Date(2026, 5, 1, 12, 0, 1, 0, time.UTC),
		Success:      true,
		InputDigest:  strings.Repeat("ab", 32),
		InputBytes:   5,
		InputPreview: "hello",
		OutputBytes:  8,
		Options:      map[string]string{"alphabet": "base64"},
	}
}

func TestSaveRecord_WritesArtifactAndIndex(t *testing.T) {
	root := t.TempDir()
	s := NewJSONStore(root, testConfig(false))

	id, err := s.SaveRecord(testRecord("aaaabbbb-1111"))
	if err != nil {
		t.Fatalf("SaveRecord: %v", err)
	}
	if id != "aaaabbbb-1111" {
		t.Fatalf("id = %q", id)
	}

	entries, err := os.ReadDir(filepath.Join(root, "history"))
	if err != nil {
		t.Fatalf("read history dir: %v", err)
	}

	var artifact, index bool
	for _, e := range entries {
		if e.Name() == "index.jsonl" {
			index = true
		} else if strings.HasSuffix(e.Name(), "-aaaabbbb.json") {
			artifact = true
		}
	}
	if !artifact || !index {
		t.Fatalf("expected artifact and index, got %v", entries)
	}
}

func TestSaveRecord_MaskingHidesInputAndOptions(t *testing.T) {
	root := t.TempDir()
	s := NewJSONStore(root, testConfig(true))

	if _, err := s.SaveRecord(testRecord("mask-1")); err != nil {
		t.Fatalf("SaveRecord: %v", err)
	}

	recs, err := s.ListRecords(0)
	if err != nil {
		t.Fatalf("ListRecords: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	if recs[0].InputPreview != "********" {
		t.Errorf("preview not masked: %q", recs[0].InputPreview)
	}
	if recs[0].Options["alphabet"] != "********" {
		t.Errorf("options not masked: %v", recs[0].Options)
	}
	if recs[0].InputDigest == "" {
		t.Error("digest should survive masking")
	}
}

func TestListRecords_NewestFirstWithLimit(t *testing.T) {
	root := t.TempDir()
	s := NewJSONStore(root, testConfig(false))

	for _, id := range []string{"first", "second", "third"} {
		if _, err := s.SaveRecord(testRecord(id)); err != nil {
			t.Fatalf("SaveRecord(%s): %v", id, err)
		}
	}

	recs, err := s.ListRecords(2)
	if err != nil {
		t.Fatalf("ListRecords: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].ID != "third" || recs[1].ID != "second" {
		t.Errorf("order wrong: %s, %s", recs[0].ID, recs[1].ID)
	}
}

func TestListRecords_EmptyWorkspace(t *testing.T) {
	s := NewJSONStore(t.TempDir(), testConfig(false))

	recs, err := s.ListRecords(10)
	if err != nil {
		t.Fatalf("ListRecords: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("expected no records, got %d", len(recs))
	}
}

func TestListRecords_SkipsCorruptLines(t *testing.T) {
	root := t.TempDir()
	s := NewJSONStore(root, testConfig(false))

	if _, err := s.SaveRecord(testRecord("good")); err != nil {
		t.Fatal(err)
	}

	idx := filepath.Join(root, "history", "index.jsonl")
	f, err := os.OpenFile(idx, os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.WriteString("{corrupt\n"); err != nil {
		t.Fatal(err)
	}
	_ = f.Close()

	recs, err := s.ListRecords(0)
	if err != nil {
		t.Fatalf("ListRecords: %v", err)
	}
	if len(recs) != 1 || recs[0].ID != "good" {
		t.Fatalf("expected only the good record, got %+v", recs)
	}
}
