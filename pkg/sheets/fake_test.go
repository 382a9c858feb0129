package sheets

import (
	"context"
	"fmt"
	"sync"
)

// fakeAPI is an in-memory worksheet store implementing API. Row 1 is the
// header, matching the real spreadsheet layout.
type fakeAPI struct {
	mu         sync.Mutex
	worksheets map[string][][]string
}

var _ API = &fakeAPI{}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{worksheets: make(map[string][][]string)}
}

func (f *fakeAPI) seed(worksheet string, header []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.worksheets[worksheet] = [][]string{header}
}

func (f *fakeAPI) ColValues(_ context.Context, worksheet string, col int) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	grid, ok := f.worksheets[worksheet]
	if !ok {
		return nil, fmt.Errorf("unknown worksheet %q", worksheet)
	}
	values := make([]string, 0, len(grid))
	for _, row := range grid {
		if col-1 < len(row) {
			values = append(values, row[col-1])
		} else {
			values = append(values, "")
		}
	}
	return values, nil
}

func (f *fakeAPI) RowValues(_ context.Context, worksheet string, row int) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	grid, ok := f.worksheets[worksheet]
	if !ok {
		return nil, fmt.Errorf("unknown worksheet %q", worksheet)
	}
	if row < 1 || row > len(grid) {
		return nil, nil
	}
	return append([]string(nil), grid[row-1]...), nil
}

func (f *fakeAPI) AllValues(_ context.Context, worksheet string) ([][]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	grid, ok := f.worksheets[worksheet]
	if !ok {
		return nil, fmt.Errorf("unknown worksheet %q", worksheet)
	}
	out := make([][]string, len(grid))
	for i, row := range grid {
		out[i] = append([]string(nil), row...)
	}
	return out, nil
}

func (f *fakeAPI) AppendRow(_ context.Context, worksheet string, values []interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	grid, ok := f.worksheets[worksheet]
	if !ok {
		return fmt.Errorf("unknown worksheet %q", worksheet)
	}
	f.worksheets[worksheet] = append(grid, cellsOf(values))
	return nil
}

func (f *fakeAPI) UpdateRow(_ context.Context, worksheet string, row int, values []interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	grid, ok := f.worksheets[worksheet]
	if !ok {
		return fmt.Errorf("unknown worksheet %q", worksheet)
	}
	if row < 1 || row > len(grid) {
		return fmt.Errorf("row %d out of range", row)
	}
	grid[row-1] = cellsOf(values)
	return nil
}
