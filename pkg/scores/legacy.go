package scores

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// legacyRecord matches both our own JSON and the browser's localStorage
// entries, whose date came from toLocaleDateString().
type legacyRecord struct {
	Score int    `json:"score"`
	Date  string `json:"date"`
}

// Layouts tried for legacy dates, most specific first. Day-first locales
// come before month-first ones since the browser version was in Spanish.
var legacyDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02",
	"2/1/2006",
	"1/2/2006",
	"2.1.2006",
}

// DecodeRecords parses a JSON array of {score, date} objects. Dates that
// cannot be parsed are kept as the zero time rather than dropping the score.
func DecodeRecords(data []byte) ([]Record, error) {
	var raw []legacyRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse scores: %w", err)
	}

	records := make([]Record, 0, len(raw))
	for _, r := range raw {
		if r.Score < 0 {
			continue
		}
		records = append(records, Record{Score: r.Score, Date: parseLegacyDate(r.Date)})
	}
	return records, nil
}

func parseLegacyDate(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range legacyDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
