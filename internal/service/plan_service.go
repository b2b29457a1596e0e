package service

import (
	"context"
	"strings"
	"time"

	"tutor_dashboard_backend/internal/model"
	"tutor_dashboard_backend/internal/repository"
	"tutor_dashboard_backend/internal/util"
	"tutor_dashboard_backend/pkg/logger"

	"go.uber.org/zap"
)

type PlanService struct {
	Plans      *repository.PlanRepository
	Curriculum *repository.CurriculumRepository

	now func() time.Time
}

func NewPlanService(plans *repository.PlanRepository, curriculum *repository.CurriculumRepository) *PlanService {
	return &PlanService{Plans: plans, Curriculum: curriculum, now: time.Now}
}

// PlanForStudent returns the student's plan rows with their derived
// curriculum fields recomputed, plus completed/pending counts. The curriculum
// join is tolerant: a Topic_ID with no library match yields empty derived
// fields, never a dropped row. The content link prefers the row's own
// Topic_Content and falls back to the curriculum's Textbook_Ref.
func (s *PlanService) PlanForStudent(ctx context.Context, studentID string) ([]model.PlanRecord, model.PlanSummary, error) {
	rows, err := s.Plans.ByStudent(ctx, studentID)
	if err != nil {
		return nil, model.PlanSummary{}, err
	}

	topics := map[string]model.CurriculumTopic{}
	if len(rows) > 0 {
		topics, err = s.Curriculum.TopicIndex(ctx)
		if err != nil {
			logger.Log.Warn("curriculum table unavailable, serving plan without derived fields", zap.Error(err))
			topics = map[string]model.CurriculumTopic{}
		}
	}

	records := make([]model.PlanRecord, 0, len(rows))
	var summary model.PlanSummary

	for _, row := range rows {
		rec := model.PlanRecord{
			PlanID:        row.PlanID,
			StudentID:     row.StudentID,
			TopicID:       row.TopicID,
			Status:        row.Status,
			CompletedBy:   row.CompletedBy,
			DateCompleted: row.DateCompleted,
		}

		topic, matched := topics[row.TopicID]
		if matched {
			rec.UnitName = topic.UnitName
			rec.SubUnitName = topic.SubUnitName
		}

		if link := strings.TrimSpace(row.TopicContent); link != "" {
			rec.ContentLink = link
		} else if matched {
			rec.ContentLink = topic.TextbookRef
		}

		if rec.Completed() {
			summary.Completed++
		} else {
			summary.Pending++
		}
		records = append(records, rec)
	}

	return records, summary, nil
}

// MarkTopicComplete stamps the plan row with the completing tutor and today's
// date in the sheet's day-first textual form.
func (s *PlanService) MarkTopicComplete(ctx context.Context, planID, tutorID string) error {
	return s.Plans.MarkComplete(ctx, planID, tutorID, util.FormatDate(s.now()))
}
