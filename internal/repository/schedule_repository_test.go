package repository

import (
	"context"
	"testing"
	"time"

	"tutor_dashboard_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullScheduleGrid() [][]string {
	return [][]string{
		{"Tutor_ID", "Student_ID", "Subject", "Date", "Start_Time", "End_Time", "Tutor_Memo"},
		{"T1", "S1", "Maths", "01/09/2025", "10:00", "11:00", ""},
		{"T1", "S2", "Physics", "02/09/2025", "12:00", "13:00", "old memo"},
		{"T2", "S1", "Maths", "01/09/2025", "14:00", "15:00", ""},
		{"T1", "S1", "Maths", "03/09/2025", "10:00", "11:00", ""},
	}
}

func newScheduleRepo(store *fakeStore) (*ScheduleRepository, *TableCache) {
	cache := NewTableCache(store, time.Hour)
	return NewScheduleRepository(store, cache), cache
}

func TestByTutorFiltersAndTrims(t *testing.T) {
	store := newFakeStore()
	grid := fullScheduleGrid()
	grid[1][0] = " T1 "
	store.addSheet("Schedule", grid)
	repo, _ := newScheduleRepo(store)

	classes, err := repo.ByTutor(context.Background(), "T1")
	require.NoError(t, err)
	require.Len(t, classes, 3)
	assert.Equal(t, "T1", classes[0].TutorID)
	assert.Equal(t, "old memo", classes[1].Memo)
}

func TestSaveMemoWritesFirstMatch(t *testing.T) {
	store := newFakeStore()
	store.addSheet("Schedule", fullScheduleGrid())
	repo, cache := newScheduleRepo(store)

	_, err := cache.Get(context.Background(), TableSchedule)
	require.NoError(t, err)

	err = repo.SaveMemo(context.Background(), " S1 ", "01/09/2025", "went well")
	require.NoError(t, err)

	require.Len(t, store.writes, 1)
	// Row 3 also matches (S1, 01/09/2025, different tutor); the first row in
	// sheet order wins by design.
	assert.Equal(t, 1, store.writes[0].row)
	assert.Equal(t, 6, store.writes[0].col)
	assert.Equal(t, "went well", store.grids["Schedule"][1][6])

	// Cache entry was dropped by the write.
	snap, err := cache.Get(context.Background(), TableSchedule)
	require.NoError(t, err)
	assert.Equal(t, "went well", snap.Rows[0]["Tutor_Memo"])
}

func TestSaveMemoNoMatch(t *testing.T) {
	store := newFakeStore()
	store.addSheet("Schedule", fullScheduleGrid())
	repo, _ := newScheduleRepo(store)

	err := repo.SaveMemo(context.Background(), "S1", "31/12/1999", "ghost class")
	require.ErrorIs(t, err, util.ErrScheduleRowNotFound)
	assert.Empty(t, store.writes)
}

func TestSaveMemoMissingColumn(t *testing.T) {
	store := newFakeStore()
	store.addSheet("Schedule", [][]string{
		{"Tutor_ID", "Student_ID", "Date"},
		{"T1", "S1", "01/09/2025"},
	})
	repo, _ := newScheduleRepo(store)

	err := repo.SaveMemo(context.Background(), "S1", "01/09/2025", "memo")
	var colErr *util.ColumnNotFoundError
	require.ErrorAs(t, err, &colErr)
	assert.Equal(t, "Tutor_Memo", colErr.Column)
	assert.Empty(t, store.writes)
}

func TestTutorRepositoryFindByID(t *testing.T) {
	store := newFakeStore()
	store.addSheet("Tutors", [][]string{
		{"Tutor_ID", "Password", "Name"},
		{"007", "secret", "Bond"},
		{"T2", "pw", ""},
	})
	cache := NewTableCache(store, time.Hour)
	repo := NewTutorRepository(cache)

	tutor, err := repo.FindByID(context.Background(), " 007 ")
	require.NoError(t, err)
	assert.Equal(t, "007", tutor.ID)
	assert.Equal(t, "Bond", tutor.Name)

	// IDs are strings: 7 must not match 007.
	_, err = repo.FindByID(context.Background(), "7")
	assert.ErrorIs(t, err, util.ErrUnknownTutor)
}
