package service

import (
	"context"
	"sort"
	"time"

	"tutor_dashboard_backend/internal/model"
	"tutor_dashboard_backend/internal/repository"
	"tutor_dashboard_backend/internal/util"
	"tutor_dashboard_backend/pkg/logger"

	"go.uber.org/zap"
)

// upcomingWindowDays is how far ahead the dashboard's upcoming group looks.
const upcomingWindowDays = 7

type ScheduleService struct {
	Schedule *repository.ScheduleRepository
	Students *repository.StudentRepository
}

func NewScheduleService(schedule *repository.ScheduleRepository, students *repository.StudentRepository) *ScheduleService {
	return &ScheduleService{Schedule: schedule, Students: students}
}

// ClassesForTutor returns the tutor's classes with student display names
// attached via a tolerant left-join: a Schedule row whose Student_ID has no
// Students match keeps the raw ID as its display name instead of being
// dropped. No ordering is imposed here.
func (s *ScheduleService) ClassesForTutor(ctx context.Context, tutorID string) ([]model.ClassRecord, error) {
	classes, err := s.Schedule.ByTutor(ctx, tutorID)
	if err != nil {
		return nil, err
	}
	if len(classes) == 0 {
		return classes, nil
	}

	names, err := s.Students.NameIndex(ctx)
	if err != nil {
		// The join target being unreadable degrades the view, it does not
		// hide the tutor's schedule.
		logger.Log.Warn("students table unavailable, falling back to raw IDs", zap.Error(err))
		names = map[string]string{}
	}

	for i := range classes {
		if name, ok := names[classes[i].StudentID]; ok && name != "" {
			classes[i].StudentName = name
		} else {
			classes[i].StudentName = classes[i].StudentID
		}
	}
	return classes, nil
}

// GroupClasses splits records into today / next seven days / past relative to
// the given day. Upcoming is soonest-first, past newest-first; records whose
// date fails to parse are excluded from all three groups.
func (s *ScheduleService) GroupClasses(records []model.ClassRecord, today time.Time) model.GroupedClasses {
	type dated struct {
		rec model.ClassRecord
		on  time.Time
	}

	var upcoming, past []dated
	grouped := model.GroupedClasses{}
	horizon := today.AddDate(0, 0, upcomingWindowDays)

	for _, rec := range records {
		on, ok := util.ParseDate(rec.Date)
		if !ok {
			continue
		}
		switch {
		case util.SameDay(on, today):
			grouped.Today = append(grouped.Today, rec)
		case on.After(today) && !on.After(horizon):
			upcoming = append(upcoming, dated{rec, on})
		case on.Before(today):
			past = append(past, dated{rec, on})
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool { return upcoming[i].on.Before(upcoming[j].on) })
	sort.SliceStable(past, func(i, j int) bool { return past[i].on.After(past[j].on) })

	for _, d := range upcoming {
		grouped.Upcoming = append(grouped.Upcoming, d.rec)
	}
	for _, d := range past {
		grouped.Past = append(grouped.Past, d.rec)
	}
	return grouped
}

// SaveMemo attaches a tutor memo to the class identified by (studentID, date).
func (s *ScheduleService) SaveMemo(ctx context.Context, studentID, date, memo string) error {
	return s.Schedule.SaveMemo(ctx, studentID, date, memo)
}
