package repository

import (
	"context"
	"strings"
)

type StudentRepository struct {
	cache *TableCache
}

func NewStudentRepository(cache *TableCache) *StudentRepository {
	return &StudentRepository{cache: cache}
}

// NameIndex maps trimmed student IDs to display names. Later duplicates do not
// overwrite earlier rows, matching first-match semantics everywhere else.
func (r *StudentRepository) NameIndex(ctx context.Context) (map[string]string, error) {
	snap, err := r.cache.Get(ctx, TableStudents)
	if err != nil {
		return nil, err
	}

	idx := make(map[string]string, len(snap.Rows))
	for _, row := range snap.Rows {
		id := strings.TrimSpace(row[ColStudentID])
		if id == "" {
			continue
		}
		if _, seen := idx[id]; !seen {
			idx[id] = strings.TrimSpace(row[ColStudentName])
		}
	}
	return idx, nil
}
