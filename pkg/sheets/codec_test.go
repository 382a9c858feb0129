package sheets

import (
	"testing"
	"time"
)

func TestFormatTimestamp(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{
			name:  "utc second precision",
			input: time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
			want:  "2026-03-14T09:26:53Z",
		},
		{
			name:  "sub-second truncated",
			input: time.Date(2026, 3, 14, 9, 26, 53, 999_000_000, time.UTC),
			want:  "2026-03-14T09:26:53Z",
		},
		{
			name:  "non-utc converted",
			input: time.Date(2026, 3, 14, 16, 26, 53, 0, loc),
			want:  "2026-03-14T09:26:53Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTimestamp(tt.input); got != tt.want {
				t.Errorf("FormatTimestamp() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	original := time.Date(2026, 12, 31, 23, 59, 59, 0, time.UTC)
	parsed, err := ParseTimestamp(FormatTimestamp(original))
	if err != nil {
		t.Fatalf("ParseTimestamp() error = %v", err)
	}
	if !parsed.Equal(original) {
		t.Errorf("round trip = %v, want %v", parsed, original)
	}
}

// The latest-row scan compares timestamps as strings, so string ordering
// must match chronological ordering.
func TestTimestampStringOrderingIsChronological(t *testing.T) {
	moments := []time.Time{
		time.Date(2025, 9, 30, 23, 59, 59, 0, time.UTC),
		time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 10, 1, 0, 0, 1, 0, time.UTC),
		time.Date(2025, 12, 9, 5, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	for i := 1; i < len(moments); i++ {
		earlier, later := FormatTimestamp(moments[i-1]), FormatTimestamp(moments[i])
		if !(earlier < later) {
			t.Errorf("expected %q < %q", earlier, later)
		}
	}
}

func TestSerializeRecord(t *testing.T) {
	columns := []string{"id", "name", "age", "created_at", "note"}
	when := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	row := SerializeRecord(columns, map[string]interface{}{
		"id":         "u-1",
		"name":       "Ana",
		"age":        7,
		"created_at": when,
		// "note" absent on purpose
	})

	want := []interface{}{"u-1", "Ana", "7", "2026-05-01T12:00:00Z", ""}
	if len(row) != len(want) {
		t.Fatalf("len = %d, want %d", len(row), len(want))
	}
	for i := range want {
		if row[i] != want[i] {
			t.Errorf("cell %d = %v, want %v", i, row[i], want[i])
		}
	}
}

func TestDeserializeRecordPadsAndTruncates(t *testing.T) {
	columns := []string{"a", "b", "c"}

	short := DeserializeRecord(columns, []string{"1"})
	if short["a"] != "1" || short["b"] != "" || short["c"] != "" {
		t.Errorf("short row = %v", short)
	}

	long := DeserializeRecord(columns, []string{"1", "2", "3", "4"})
	if len(long) != 3 || long["c"] != "3" {
		t.Errorf("long row = %v", long)
	}
}

func TestColumnLetter(t *testing.T) {
	tests := []struct {
		index int
		want  string
	}{
		{1, "A"},
		{2, "B"},
		{26, "Z"},
		{27, "AA"},
		{28, "AB"},
		{52, "AZ"},
		{53, "BA"},
		{702, "ZZ"},
		{703, "AAA"},
	}

	for _, tt := range tests {
		if got := ColumnLetter(tt.index); got != tt.want {
			t.Errorf("ColumnLetter(%d) = %q, want %q", tt.index, got, tt.want)
		}
	}
}
