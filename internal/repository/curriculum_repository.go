package repository

import (
	"context"
	"strings"

	"tutor_dashboard_backend/internal/model"
)

type CurriculumRepository struct {
	cache *TableCache
}

func NewCurriculumRepository(cache *TableCache) *CurriculumRepository {
	return &CurriculumRepository{cache: cache}
}

// TopicIndex maps trimmed topic IDs to curriculum entries for join lookups.
func (r *CurriculumRepository) TopicIndex(ctx context.Context) (map[string]model.CurriculumTopic, error) {
	snap, err := r.cache.Get(ctx, TableCurriculum)
	if err != nil {
		return nil, err
	}

	idx := make(map[string]model.CurriculumTopic, len(snap.Rows))
	for _, row := range snap.Rows {
		id := strings.TrimSpace(row[ColTopicID])
		if id == "" {
			continue
		}
		if _, seen := idx[id]; seen {
			continue
		}
		idx[id] = model.CurriculumTopic{
			TopicID:     id,
			UnitName:    row[ColUnitName],
			SubUnitName: row[ColSubUnitName],
			TextbookRef: row[ColTextbookRef],
		}
	}
	return idx, nil
}
