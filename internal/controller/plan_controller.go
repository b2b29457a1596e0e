package controller

import (
	"errors"
	"net/http"

	"tutor_dashboard_backend/internal/service"
	"tutor_dashboard_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PlanController struct {
	PlanService *service.PlanService
}

func NewPlanController(planService *service.PlanService) *PlanController {
	return &PlanController{PlanService: planService}
}

// GetStudentPlan returns a student's learning plan with derived curriculum
// fields and completion counts.
func (c *PlanController) GetStudentPlan(ctx *gin.Context) {
	studentID := ctx.Param("studentId")

	records, summary, err := c.PlanService.PlanForStudent(ctx.Request.Context(), studentID)
	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"topics":  records,
		"summary": summary,
	})
}

// MarkComplete marks a plan row as completed by the authenticated tutor.
func (c *PlanController) MarkComplete(ctx *gin.Context) {
	claims := util.GetTutorFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	planID := ctx.Param("planId")
	err := c.PlanService.MarkTopicComplete(ctx.Request.Context(), planID, claims.TutorID)
	if err != nil {
		if errors.Is(err, util.ErrPlanNotFound) {
			util.NotFound(ctx, "Plan ID not found")
			return
		}
		respondStoreError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "Topic marked as completed"})
}

// respondStoreError maps sheet-layer failures onto user-facing responses.
// Schema drift and partial writes carry their diagnostic text through; plain
// connection failures stay generic.
func respondStoreError(ctx *gin.Context, err error) {
	var tableErr *util.TableNotFoundError
	var colErr *util.ColumnNotFoundError
	var partial *util.PartialWriteError

	switch {
	case errors.As(err, &partial):
		util.Error(ctx, http.StatusInternalServerError, partial.Error())
	case errors.As(err, &tableErr):
		util.Error(ctx, http.StatusBadGateway, tableErr.Error())
	case errors.As(err, &colErr):
		util.Error(ctx, http.StatusBadGateway, colErr.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
