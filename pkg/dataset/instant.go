package dataset

import (
	"strings"
	"time"
)

// TimeLayouts are the accepted timestamp layouts, tried in order. Layouts
// without a zone are read as UTC.
var TimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
	"01/02/2006",
}

type instantKind int

const (
	kindNumber instantKind = iota + 1
	kindTime
)

func (k instantKind) String() string {
	if k == kindTime {
		return "timestamp"
	}
	return "number"
}

// parseInstant reads a begin or end cell.
func parseInstant(s string) (float64, instantKind, bool) {
	s = strings.TrimSpace(s)
	if f, ok := parseNumber(s); ok {
		return f, kindNumber, true
	}
	for _, layout := range TimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return float64(t.Unix()) + float64(t.Nanosecond())/1e9, kindTime, true
		}
	}
	return 0, 0, false
}
