package gateway

import (
	"testing"
	"time"

	"github.com/morningfm/front/internal/domain"
)

func TestParseWireTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{"naive", "2024-03-01T12:30:00", time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)},
		{"naive fractional", "2024-03-01T12:30:00.123456", time.Date(2024, 3, 1, 12, 30, 0, 123456000, time.UTC)},
		{"rfc3339 utc", "2024-03-01T12:30:00Z", time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)},
		{"rfc3339 offset normalized", "2024-03-01T14:30:00+02:00", time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseWireTime(tt.raw)
			if err != nil {
				t.Fatalf("ParseWireTime(%q): %v", tt.raw, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseWireTime(%q) = %v, want %v", tt.raw, got, tt.want)
			}
			if got.Location() != time.UTC {
				t.Errorf("location = %v, want UTC", got.Location())
			}
		})
	}

	if _, err := ParseWireTime("yesterday at noon"); err == nil {
		t.Error("expected error for garbage input")
	}
}

func TestFormatWireTime(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+2", 2*60*60)
	in := time.Date(2024, 3, 1, 14, 30, 0, 0, loc)
	if got := FormatWireTime(in); got != "2024-03-01T12:30:00" {
		t.Errorf("FormatWireTime = %q", got)
	}
}

func TestSortOrderWireValue(t *testing.T) {
	t.Parallel()

	if got := SortOrderWireValue(domain.SortOrderAscending); got != "ascending" {
		t.Errorf("ascending = %q", got)
	}
	if got := SortOrderWireValue(domain.SortOrderDescending); got != "descending" {
		t.Errorf("descending = %q", got)
	}
}
