package ports

import "github.com/aalvaropc/toolbelt/internal/domain"

// HistoryStore persists tool invocations for later inspection.
type HistoryStore interface {
	SaveRecord(rec domain.HistoryRecord) (id string, err error)
	ListRecords(limit int) ([]domain.HistoryRecord, error)
}
