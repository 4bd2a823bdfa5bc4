package gateway

import (
	"fmt"
	"strings"
	"time"

	"github.com/morningfm/front/internal/domain"
)

// WireTimeLayout is the naive UTC timestamp format the backend services
// speak. No zone suffix; the value is implicitly UTC.
const WireTimeLayout = "2006-01-02T15:04:05"

// WireDateLayout is the calendar-date format used by the sunlight service.
const WireDateLayout = "2006-01-02"

// ParseWireTime parses a backend timestamp. Naive values are taken as UTC;
// zoned values (some backends emit RFC3339) are normalized to UTC.
func ParseWireTime(raw string) (time.Time, error) {
	if t, err := time.Parse(WireTimeLayout, raw); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(WireTimeLayout+".999999999", raw); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("parse wire time %q", raw)
}

// FormatWireTime renders a timestamp in the naive UTC wire format.
func FormatWireTime(t time.Time) string {
	return t.UTC().Format(WireTimeLayout)
}

// SortOrderWireValue maps a SortOrder to its query-parameter spelling
// ("ascending" / "descending").
func SortOrderWireValue(o domain.SortOrder) string {
	return strings.ToLower(o.String())
}
