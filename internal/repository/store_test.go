package repository

import (
	"context"
	"fmt"
)

// fakeStore is an in-memory Store: a map of worksheet grids plus a write log.
// failWriteAt makes the nth UpdateCell call fail, for partial-write tests.
type fakeStore struct {
	titles []string
	grids  map[string][][]string

	reads       int
	writes      []writeOp
	failWriteAt int // 1-based call number to fail on; 0 = never
	writeCalls  int
}

type writeOp struct {
	title string
	row   int
	col   int
	value string
}

func newFakeStore() *fakeStore {
	return &fakeStore{grids: map[string][][]string{}}
}

func (f *fakeStore) addSheet(title string, grid [][]string) {
	f.titles = append(f.titles, title)
	f.grids[title] = grid
}

func (f *fakeStore) WorksheetTitles(ctx context.Context) ([]string, error) {
	return append([]string(nil), f.titles...), nil
}

func (f *fakeStore) ReadAll(ctx context.Context, title string) ([][]string, error) {
	grid, ok := f.grids[title]
	if !ok {
		return nil, fmt.Errorf("no worksheet %q", title)
	}
	f.reads++
	out := make([][]string, len(grid))
	for i, row := range grid {
		out[i] = append([]string(nil), row...)
	}
	return out, nil
}

func (f *fakeStore) UpdateCell(ctx context.Context, title string, row, col int, value string) error {
	f.writeCalls++
	if f.failWriteAt > 0 && f.writeCalls >= f.failWriteAt {
		return fmt.Errorf("simulated write failure on call %d", f.writeCalls)
	}

	grid, ok := f.grids[title]
	if !ok || row >= len(grid) {
		return fmt.Errorf("cell out of range in %q", title)
	}
	for col >= len(grid[row]) {
		grid[row] = append(grid[row], "")
	}
	grid[row][col] = value
	f.writes = append(f.writes, writeOp{title, row, col, value})
	return nil
}
