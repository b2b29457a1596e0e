package repository

import (
	"context"
	"strings"

	"tutor_dashboard_backend/internal/model"
	"tutor_dashboard_backend/internal/util"
)

type ScheduleRepository struct {
	store Store
	cache *TableCache
}

func NewScheduleRepository(store Store, cache *TableCache) *ScheduleRepository {
	return &ScheduleRepository{store: store, cache: cache}
}

// ByTutor returns every Schedule row assigned to the tutor, in sheet order.
// Student names are attached by the service layer; this returns raw rows.
func (r *ScheduleRepository) ByTutor(ctx context.Context, tutorID string) ([]model.ClassRecord, error) {
	snap, err := r.cache.Get(ctx, TableSchedule)
	if err != nil {
		return nil, err
	}

	var out []model.ClassRecord
	for _, row := range snap.Rows {
		if !eqID(row[ColTutorID], tutorID) {
			continue
		}
		out = append(out, model.ClassRecord{
			TutorID:   strings.TrimSpace(row[ColTutorID]),
			StudentID: strings.TrimSpace(row[ColStudentID]),
			Subject:   row[ColSubject],
			Date:      strings.TrimSpace(row[ColDate]),
			StartTime: row[ColStartTime],
			EndTime:   row[ColEndTime],
			Memo:      row[ColTutorMemo],
		})
	}
	return out, nil
}

// SaveMemo writes the memo cell of the first Schedule row matching the
// trimmed (studentID, date) pair, then drops the cached Schedule snapshot.
// The row is located by a fresh scan because position is the only address the
// backend offers; two classes on the same date for one student bind to the
// first row in sheet order. The Tutor_Memo column must already exist; the
// repository never creates columns.
func (r *ScheduleRepository) SaveMemo(ctx context.Context, studentID, date, memo string) error {
	snap, err := r.cache.Fresh(ctx, TableSchedule)
	if err != nil {
		return err
	}

	memoCol, ok := snap.ColumnIndex(ColTutorMemo)
	if !ok {
		return &util.ColumnNotFoundError{Table: snap.Title, Column: ColTutorMemo, Available: snap.Headers}
	}

	for i, row := range snap.Rows {
		if !eqID(row[ColStudentID], studentID) || !eqID(row[ColDate], date) {
			continue
		}

		if err := r.store.UpdateCell(ctx, snap.Title, snap.RowIndex(i), memoCol, memo); err != nil {
			return err
		}
		r.cache.Invalidate(TableSchedule)
		return nil
	}

	return util.ErrScheduleRowNotFound
}
