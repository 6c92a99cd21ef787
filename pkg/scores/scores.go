// Package scores keeps the list of finished games and ranks them.
package scores

import (
	"context"
	"errors"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// ErrInvalidScore is returned when appending a negative score
var ErrInvalidScore = errors.New("score must be non-negative")

// Record is one finished game
type Record struct {
	Score int       `json:"score"`
	Date  time.Time `json:"date"`
}

// Store persists records. List returns them in insertion order.
type Store interface {
	Append(ctx context.Context, rec Record) error
	List(ctx context.Context) ([]Record, error)
	Clear(ctx context.Context) error
	Close() error
}

// Open picks the backend from the path: a .json file is kept as a
// FileStore, anything else as a SQLite database.
func Open(path string) (Store, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return NewFileStore(path), nil
	}
	return OpenSQLite(path)
}

// Top returns the n highest records, best first. Equal scores keep the
// earlier game first.
func Top(records []Record, n int) []Record {
	sorted := make([]Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// Best returns the highest score, or 0 when there are no records
func Best(records []Record) int {
	best := 0
	for _, r := range records {
		if r.Score > best {
			best = r.Score
		}
	}
	return best
}

// IsNewRecord reports whether score is at least as high as every record.
// records is expected to already contain the game being checked.
func IsNewRecord(score int, records []Record) bool {
	if len(records) == 0 {
		return false
	}
	return score >= Best(records)
}
