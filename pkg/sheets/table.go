package sheets

import (
	"context"
)

// Table exposes row-oriented CRUD over one worksheet. Row 1 is the header;
// data starts at row 2. Column 1 holds the record identifier.
//
// Lookups are full-column scans, O(rows). That is acceptable for the row
// counts a spreadsheet realistically holds; swap the backing store before
// it stops being acceptable.
type Table struct {
	api       API
	worksheet string
	columns   []string
}

func NewTable(api API, worksheet string, columns []string) *Table {
	return &Table{api: api, worksheet: worksheet, columns: columns}
}

func (t *Table) Worksheet() string {
	return t.worksheet
}

func (t *Table) Columns() []string {
	return t.columns
}

// findRowByColumn scans a column top-to-bottom and returns the 1-based row
// index of the first cell equal to value. Not-found is a boolean, not an
// error.
func (t *Table) findRowByColumn(ctx context.Context, col int, value string) (int, bool, error) {
	cells, err := t.api.ColValues(ctx, t.worksheet, col)
	if err != nil {
		return 0, false, err
	}
	for i, cell := range cells {
		if cell == value {
			return i + 1, true, nil
		}
	}
	return 0, false, nil
}

func (t *Table) findRowByID(ctx context.Context, id string) (int, bool, error) {
	return t.findRowByColumn(ctx, 1, id)
}

// Append adds a record as a new row. No uniqueness check happens here;
// callers enforce uniqueness (e.g. email) before appending.
func (t *Table) Append(ctx context.Context, record map[string]interface{}) error {
	return t.api.AppendRow(ctx, t.worksheet, SerializeRecord(t.columns, record))
}

func (t *Table) GetByID(ctx context.Context, id string) (map[string]string, bool, error) {
	row, found, err := t.findRowByID(ctx, id)
	if err != nil || !found {
		return nil, false, err
	}

	values, err := t.api.RowValues(ctx, t.worksheet, row)
	if err != nil {
		return nil, false, err
	}
	return DeserializeRecord(t.columns, values), true, nil
}

// GetByColumn fetches the first record whose cell in the given 1-based
// column equals value (used for the email lookup).
func (t *Table) GetByColumn(ctx context.Context, col int, value string) (map[string]string, bool, error) {
	row, found, err := t.findRowByColumn(ctx, col, value)
	if err != nil || !found {
		return nil, false, err
	}

	values, err := t.api.RowValues(ctx, t.worksheet, row)
	if err != nil {
		return nil, false, err
	}
	return DeserializeRecord(t.columns, values), true, nil
}

// Update is a read-modify-write: read the current row, shallow-merge the
// partial fields over it, write the whole row back. There is no version
// token and no row lock, so two concurrent updaters of the same row race
// and the later write wins. Documented limitation of the spreadsheet
// backend; see the repository tests.
func (t *Table) Update(ctx context.Context, id string, partial map[string]interface{}) (map[string]string, bool, error) {
	row, found, err := t.findRowByID(ctx, id)
	if err != nil || !found {
		return nil, false, err
	}

	values, err := t.api.RowValues(ctx, t.worksheet, row)
	if err != nil {
		return nil, false, err
	}

	current := DeserializeRecord(t.columns, values)
	merged := make(map[string]interface{}, len(current))
	for k, v := range current {
		merged[k] = v
	}
	for k, v := range partial {
		merged[k] = v
	}

	serialized := SerializeRecord(t.columns, merged)
	if err := t.api.UpdateRow(ctx, t.worksheet, row, serialized); err != nil {
		return nil, false, err
	}
	return DeserializeRecord(t.columns, cellsOf(serialized)), true, nil
}

// Rows returns every data record (header excluded), in sheet order.
func (t *Table) Rows(ctx context.Context) ([]map[string]string, error) {
	grid, err := t.api.AllValues(ctx, t.worksheet)
	if err != nil {
		return nil, err
	}
	if len(grid) <= 1 {
		return nil, nil
	}

	records := make([]map[string]string, 0, len(grid)-1)
	for _, row := range grid[1:] {
		records = append(records, DeserializeRecord(t.columns, row))
	}
	return records, nil
}

// LatestByColumn scans the table for rows whose cell in the 1-based fkCol
// equals fkValue and returns the one with the lexicographically greatest
// value in tsColumn. Correct only because the canonical timestamp format
// is lexicographically monotonic.
func (t *Table) LatestByColumn(ctx context.Context, fkCol int, fkValue, tsColumn string) (map[string]string, bool, error) {
	records, err := t.Rows(ctx)
	if err != nil {
		return nil, false, err
	}

	fkColumn := t.columns[fkCol-1]
	var latest map[string]string
	for _, record := range records {
		if record[fkColumn] != fkValue {
			continue
		}
		if latest == nil || record[tsColumn] > latest[tsColumn] {
			latest = record
		}
	}
	return latest, latest != nil, nil
}

func cellsOf(values []interface{}) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = cellString(v)
	}
	return out
}
