package service

import (
	"context"
	"testing"
	"time"

	"tutor_dashboard_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPlans(store *fakeStore) {
	store.addSheet("Student_Plan", [][]string{
		{"Plan_ID", "Student_ID", "Topic_ID", "Status", "Completed_By", "Date_Completed", "Topic_Content"},
		{"P10", "S1", "TOP1", "Completed", "T2", "20/08/2025", ""},
		{"P11", "S1", "TOP2", "Pending", "", "", "https://drive.example/own-material"},
		{"P12", "S1", "TOP3", "", "", "", ""},
		{"P13", "S1", "TOPX", "pending", "", "", ""},
		{"P20", "S2", "TOP1", "Pending", "", "", ""},
	})
	store.addSheet("Curriculum_Library", [][]string{
		{"Topic_ID", "Unit_Name", "Sub_Unit_Name", "Textbook_Ref"},
		{"TOP1", "Algebra", "Linear Equations", "https://books.example/algebra#3"},
		{"TOP2", "Algebra", "Quadratics", "https://books.example/algebra#4"},
		{"TOP3", "Geometry", "Triangles", "https://books.example/geometry#1"},
	})
}

func TestPlanForStudentJoinsAndCounts(t *testing.T) {
	store := newFakeStore()
	seedPlans(store)
	h := newHarness(store)

	records, summary, err := h.plan.PlanForStudent(context.Background(), "S1")
	require.NoError(t, err)
	require.Len(t, records, 4)

	byPlan := map[string]int{}
	for i, r := range records {
		byPlan[r.PlanID] = i
	}

	// Derived fields come from the curriculum join.
	assert.Equal(t, "Linear Equations", records[byPlan["P10"]].SubUnitName)
	assert.Equal(t, "Algebra", records[byPlan["P10"]].UnitName)

	// Topic_Content wins over Textbook_Ref when present.
	assert.Equal(t, "https://drive.example/own-material", records[byPlan["P11"]].ContentLink)
	// Blank Topic_Content falls back to the curriculum's Textbook_Ref.
	assert.Equal(t, "https://books.example/geometry#1", records[byPlan["P12"]].ContentLink)

	// Unmatched Topic_ID: empty derived fields, row kept.
	unmatched := records[byPlan["P13"]]
	assert.Equal(t, "", unmatched.SubUnitName)
	assert.Equal(t, "", unmatched.UnitName)
	assert.Equal(t, "", unmatched.ContentLink)

	// Status policy: only the literal "Completed" counts; "pending", blank and
	// lowercase variants are all pending.
	assert.Equal(t, 1, summary.Completed)
	assert.Equal(t, 3, summary.Pending)
}

func TestPlanForStudentEmptyPlan(t *testing.T) {
	store := newFakeStore()
	seedPlans(store)
	h := newHarness(store)

	records, summary, err := h.plan.PlanForStudent(context.Background(), "S9")
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Zero(t, summary.Completed)
	assert.Zero(t, summary.Pending)
}

func TestMarkTopicCompleteEndToEnd(t *testing.T) {
	store := newFakeStore()
	seedPlans(store)
	h := newHarness(store)

	h.plan.now = func() time.Time { return time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC) }

	// Warm the cache, note the starting aggregate.
	_, before, err := h.plan.PlanForStudent(context.Background(), "S1")
	require.NoError(t, err)
	require.Equal(t, 1, before.Completed)

	err = h.plan.MarkTopicComplete(context.Background(), "P11", "T1")
	require.NoError(t, err)

	records, after, err := h.plan.PlanForStudent(context.Background(), "S1")
	require.NoError(t, err)
	assert.Equal(t, before.Completed+1, after.Completed)
	assert.Equal(t, before.Pending-1, after.Pending)

	for _, r := range records {
		if r.PlanID == "P11" {
			assert.Equal(t, "Completed", r.Status)
			assert.Equal(t, "T1", r.CompletedBy)
			assert.Equal(t, "01/09/2025", r.DateCompleted)
		}
	}
}

func TestMarkTopicCompleteUnknownPlan(t *testing.T) {
	store := newFakeStore()
	seedPlans(store)
	h := newHarness(store)

	err := h.plan.MarkTopicComplete(context.Background(), "NOPE", "T1")
	require.ErrorIs(t, err, util.ErrPlanNotFound)
	assert.Zero(t, store.writes)
}
