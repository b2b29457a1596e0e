package controller

import (
	"context"
	"net/http"
	"time"

	"tutor_dashboard_backend/internal/repository"
	"tutor_dashboard_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	Store repository.Store
}

func NewHealthController(store repository.Store) *HealthController {
	return &HealthController{Store: store}
}

// HealthCheck pings the spreadsheet backend with a short deadline.
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	probeCtx, cancel := context.WithTimeout(ctx.Request.Context(), 5*time.Second)
	defer cancel()

	if _, err := c.Store.WorksheetTitles(probeCtx); err != nil {
		util.Error(ctx, http.StatusServiceUnavailable, "spreadsheet backend unreachable")
		return
	}

	util.Success(ctx, gin.H{"status": "ok"})
}
