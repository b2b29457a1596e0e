package controller

import (
	"tutor_dashboard_backend/internal/service"
	"tutor_dashboard_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

type LoginRequest struct {
	TutorID  string `json:"tutorId" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login verifies tutor credentials against the Tutors worksheet and returns a
// session token. Unknown ID and bad password deliberately produce the same
// message.
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, identity, err := c.AuthService.Login(ctx.Request.Context(), req.TutorID, req.Password)
	if err != nil {
		if service.IsCredentialError(err) {
			util.Error(ctx, 401, "Invalid Tutor ID or password")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{
		"token":   token,
		"tutorId": identity.ID,
		"name":    identity.Name,
	})
}
