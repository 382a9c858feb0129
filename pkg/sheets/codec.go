package sheets

import (
	"fmt"
	"time"
)

// TimestampLayout is the canonical cell format for timestamps: ISO-8601,
// UTC, second precision, Z suffix. The layout is zero-padded so string
// ordering of two timestamps matches their chronological ordering; the
// latest-row scan relies on that.
const TimestampLayout = "2006-01-02T15:04:05Z"

func FormatTimestamp(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(TimestampLayout)
}

func ParseTimestamp(value string) (time.Time, error) {
	return time.Parse(TimestampLayout, value)
}

// SerializeRecord maps a flat record onto the ordered column list. Absent
// keys become empty cells; time.Time values are canonicalized.
func SerializeRecord(columns []string, record map[string]interface{}) []interface{} {
	row := make([]interface{}, 0, len(columns))
	for _, column := range columns {
		value, ok := record[column]
		if !ok || value == nil {
			row = append(row, "")
			continue
		}
		switch v := value.(type) {
		case time.Time:
			row = append(row, FormatTimestamp(v))
		case string:
			row = append(row, v)
		default:
			row = append(row, fmt.Sprint(v))
		}
	}
	return row
}

// DeserializeRecord zips a row of cells into a record keyed by column name.
// Missing trailing cells become empty strings; extra cells are dropped. No
// type coercion happens here, the storage layer is untyped text.
func DeserializeRecord(columns []string, values []string) map[string]string {
	record := make(map[string]string, len(columns))
	for i, column := range columns {
		if i < len(values) {
			record[column] = values[i]
		} else {
			record[column] = ""
		}
	}
	return record
}

// ColumnLetter returns the A1-notation letter for a 1-based column index.
func ColumnLetter(index int) string {
	result := ""
	for index > 0 {
		index--
		result = string(rune('A'+index%26)) + result
		index /= 26
	}
	return result
}
