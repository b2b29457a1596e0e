package repository

import (
	"context"
	"strings"
)

// Logical table names. The physical worksheet titles may carry incidental
// whitespace; the resolver maps between the two.
const (
	TableTutors     = "Tutors"
	TableStudents   = "Students"
	TableSchedule   = "Schedule"
	TablePlans      = "Student_Plan"
	TableCurriculum = "Curriculum_Library"
)

// Column names shared across repositories.
const (
	ColTutorID       = "Tutor_ID"
	ColStudentID     = "Student_ID"
	ColStudentName   = "Student_Name"
	ColPassword      = "Password"
	ColName          = "Name"
	ColSubject       = "Subject"
	ColDate          = "Date"
	ColStartTime     = "Start_Time"
	ColEndTime       = "End_Time"
	ColTutorMemo     = "Tutor_Memo"
	ColPlanID        = "Plan_ID"
	ColTopicID       = "Topic_ID"
	ColStatus        = "Status"
	ColCompletedBy   = "Completed_By"
	ColDateCompleted = "Date_Completed"
	ColTopicContent  = "Topic_Content"
	ColUnitName      = "Unit_Name"
	ColSubUnitName   = "Sub_Unit_Name"
	ColTextbookRef   = "Textbook_Ref"
)

// Store is the minimal remote surface the repositories depend on. The real
// implementation is pkg/sheets.Client; tests substitute an in-memory fake.
type Store interface {
	WorksheetTitles(ctx context.Context) ([]string, error)
	ReadAll(ctx context.Context, title string) ([][]string, error)
	UpdateCell(ctx context.Context, title string, row, col int, value string) error
}

// Record maps trimmed column headers to raw cell text for one row.
type Record map[string]string

// Snapshot is a materialized, point-in-time copy of one worksheet. Headers are
// trimmed on load so logical column lookups never fail over incidental
// whitespace in the source header row. Snapshots are never mutated after
// construction; the cache hands the same one out until it expires.
type Snapshot struct {
	Title   string
	Headers []string
	Rows    []Record

	cols map[string]int
}

// ColumnIndex resolves a logical column name to its zero-based grid index.
func (s *Snapshot) ColumnIndex(name string) (int, bool) {
	i, ok := s.cols[name]
	return i, ok
}

// RowIndex converts a Rows index to the zero-based grid row, accounting for
// the header row.
func (s *Snapshot) RowIndex(i int) int {
	return i + 1
}

// materialize builds a snapshot from a raw grid. The first row is the header;
// short data rows are padded with empty strings so every record has every
// column. An empty grid yields an empty snapshot, not an error.
func materialize(title string, grid [][]string) *Snapshot {
	snap := &Snapshot{Title: title, cols: map[string]int{}}
	if len(grid) == 0 {
		return snap
	}

	for i, h := range grid[0] {
		h = strings.TrimSpace(h)
		snap.Headers = append(snap.Headers, h)
		if _, dup := snap.cols[h]; !dup {
			snap.cols[h] = i
		}
	}

	for _, row := range grid[1:] {
		rec := make(Record, len(snap.Headers))
		for i, h := range snap.Headers {
			if i < len(row) {
				rec[h] = row[i]
			} else {
				rec[h] = ""
			}
		}
		snap.Rows = append(snap.Rows, rec)
	}

	return snap
}

// eqID compares identifiers the way the sheet's editors think about them:
// surrounding whitespace is noise, case and leading zeros are significant.
func eqID(a, b string) bool {
	return strings.TrimSpace(a) == strings.TrimSpace(b)
}
