package service

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"tutor_dashboard_backend/internal/config"
	"tutor_dashboard_backend/internal/repository"
	"tutor_dashboard_backend/pkg/logger"

	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

// fakeStore backs the repositories with in-memory grids so the engines can be
// exercised without a spreadsheet.
type fakeStore struct {
	titles []string
	grids  map[string][][]string
	writes int
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
	out := make([][]string, len(grid))
	for i, row := range grid {
		out[i] = append([]string(nil), row...)
	}
	return out, nil
}

func (f *fakeStore) UpdateCell(ctx context.Context, title string, row, col int, value string) error {
	grid, ok := f.grids[title]
	if !ok || row >= len(grid) {
		return fmt.Errorf("cell out of range in %q", title)
	}
	for col >= len(grid[row]) {
		grid[row] = append(grid[row], "")
	}
	grid[row][col] = value
	f.writes++
	return nil
}

// harness wires real repositories and services over a fakeStore.
type harness struct {
	store    *fakeStore
	cache    *repository.TableCache
	auth     *AuthService
	schedule *ScheduleService
	plan     *PlanService
}

func newHarness(store *fakeStore) *harness {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-test-secret-test-secret"
	cfg.JWT.ExpireTime = time.Hour

	cache := repository.NewTableCache(store, time.Hour)
	tutors := repository.NewTutorRepository(cache)
	students := repository.NewStudentRepository(cache)
	schedule := repository.NewScheduleRepository(store, cache)
	plans := repository.NewPlanRepository(store, cache)
	curriculum := repository.NewCurriculumRepository(cache)

	return &harness{
		store:    store,
		cache:    cache,
		auth:     NewAuthService(tutors, cfg),
		schedule: NewScheduleService(schedule, students),
		plan:     NewPlanService(plans, curriculum),
	}
}
