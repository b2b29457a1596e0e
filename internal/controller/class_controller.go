package controller

import (
	"errors"
	"time"

	"tutor_dashboard_backend/internal/service"
	"tutor_dashboard_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ClassController struct {
	ScheduleService *service.ScheduleService
}

func NewClassController(scheduleService *service.ScheduleService) *ClassController {
	return &ClassController{ScheduleService: scheduleService}
}

// GetClasses returns the authenticated tutor's classes grouped into today,
// the next seven days and past.
func (c *ClassController) GetClasses(ctx *gin.Context) {
	claims := util.GetTutorFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	classes, err := c.ScheduleService.ClassesForTutor(ctx.Request.Context(), claims.TutorID)
	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	util.Success(ctx, c.ScheduleService.GroupClasses(classes, time.Now()))
}

type SaveMemoRequest struct {
	StudentID string `json:"studentId" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Memo      string `json:"memo"`
}

// SaveMemo attaches a memo to the class identified by student and date.
func (c *ClassController) SaveMemo(ctx *gin.Context) {
	var req SaveMemoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	err := c.ScheduleService.SaveMemo(ctx.Request.Context(), req.StudentID, req.Date, req.Memo)
	if err != nil {
		if errors.Is(err, util.ErrScheduleRowNotFound) {
			util.NotFound(ctx, "No class found for that student and date")
			return
		}
		respondStoreError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "Memo saved"})
}
