package repository

import (
	"context"
	"strings"

	"tutor_dashboard_backend/internal/model"
	"tutor_dashboard_backend/internal/util"
)

type PlanRepository struct {
	store Store
	cache *TableCache
}

func NewPlanRepository(store Store, cache *TableCache) *PlanRepository {
	return &PlanRepository{store: store, cache: cache}
}

// PlanRow is a raw Student_Plan row before the curriculum join.
type PlanRow struct {
	PlanID        string
	StudentID     string
	TopicID       string
	Status        string
	CompletedBy   string
	DateCompleted string
	TopicContent  string
}

// ByStudent returns the student's plan rows in sheet order, unjoined.
func (r *PlanRepository) ByStudent(ctx context.Context, studentID string) ([]PlanRow, error) {
	snap, err := r.cache.Get(ctx, TablePlans)
	if err != nil {
		return nil, err
	}

	var out []PlanRow
	for _, row := range snap.Rows {
		if !eqID(row[ColStudentID], studentID) {
			continue
		}
		out = append(out, PlanRow{
			PlanID:        strings.TrimSpace(row[ColPlanID]),
			StudentID:     strings.TrimSpace(row[ColStudentID]),
			TopicID:       strings.TrimSpace(row[ColTopicID]),
			Status:        strings.TrimSpace(row[ColStatus]),
			CompletedBy:   row[ColCompletedBy],
			DateCompleted: row[ColDateCompleted],
			TopicContent:  row[ColTopicContent],
		})
	}
	return out, nil
}

// MarkComplete stamps a plan row as done: Status, Completed_By and
// Date_Completed are written as three separate cell updates against a freshly
// read table. The sequence is not atomic; if a later write fails after an
// earlier one succeeded the row is left inconsistent in the sheet and the
// caller gets a PartialWriteError saying exactly how far the sequence got.
// The Student_Plan snapshot is invalidated whenever at least one cell changed.
func (r *PlanRepository) MarkComplete(ctx context.Context, planID, tutorID, dateCompleted string) error {
	snap, err := r.cache.Fresh(ctx, TablePlans)
	if err != nil {
		return err
	}

	for _, col := range []string{ColStatus, ColCompletedBy, ColDateCompleted} {
		if _, ok := snap.ColumnIndex(col); !ok {
			return &util.ColumnNotFoundError{Table: snap.Title, Column: col, Available: snap.Headers}
		}
	}

	rowIdx := -1
	for i, row := range snap.Rows {
		if eqID(row[ColPlanID], planID) {
			rowIdx = i
			break
		}
	}
	if rowIdx == -1 {
		return util.ErrPlanNotFound
	}

	writes := []struct {
		col   string
		value string
	}{
		{ColStatus, model.StatusCompleted},
		{ColCompletedBy, tutorID},
		{ColDateCompleted, dateCompleted},
	}

	var written []string
	for _, w := range writes {
		col, _ := snap.ColumnIndex(w.col)
		if err := r.store.UpdateCell(ctx, snap.Title, snap.RowIndex(rowIdx), col, w.value); err != nil {
			if len(written) > 0 {
				r.cache.Invalidate(TablePlans)
				return &util.PartialWriteError{
					Table:   snap.Title,
					Written: written,
					Failed:  w.col,
					Err:     err,
				}
			}
			return err
		}
		written = append(written, w.col)
	}

	r.cache.Invalidate(TablePlans)
	return nil
}
