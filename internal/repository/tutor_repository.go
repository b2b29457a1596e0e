package repository

import (
	"context"
	"strings"

	"tutor_dashboard_backend/internal/model"
	"tutor_dashboard_backend/internal/util"
)

type TutorRepository struct {
	cache *TableCache
}

func NewTutorRepository(cache *TableCache) *TutorRepository {
	return &TutorRepository{cache: cache}
}

// FindByID scans the Tutors table for a trimmed ID match. The raw (untrimmed)
// cell values are preserved on the returned row.
func (r *TutorRepository) FindByID(ctx context.Context, tutorID string) (*model.Tutor, error) {
	snap, err := r.cache.Get(ctx, TableTutors)
	if err != nil {
		return nil, err
	}

	for _, row := range snap.Rows {
		if eqID(row[ColTutorID], tutorID) {
			return &model.Tutor{
				ID:       strings.TrimSpace(row[ColTutorID]),
				Password: row[ColPassword],
				Name:     strings.TrimSpace(row[ColName]),
			}, nil
		}
	}

	return nil, util.ErrUnknownTutor
}
