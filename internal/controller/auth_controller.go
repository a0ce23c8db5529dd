package controller

import (
	"clue_quest_backend/internal/service"
	"clue_quest_backend/internal/util"
	"clue_quest_backend/pkg/security"
	"errors"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
	IsRelease   bool
}

func NewAuthController(authService *service.AuthService, isRelease bool) *AuthController {
	return &AuthController{
		AuthService: authService,
		IsRelease:   isRelease,
	}
}

// swagger:model LoginRequest
type LoginRequest struct {
	TeamID   string `json:"team_id" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Team login or registration
// @Description Logs an existing team in, or registers a new one when the team id is unused
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   body body LoginRequest true "Team credentials"
// @Success 200 {object} util.Response{data=object} "Welcome back"
// @Success 201 {object} util.Response{data=object} "Registered"
// @Failure 400 {object} util.Response "Missing fields or registration failure"
// @Failure 401 {object} util.Response "Invalid credentials"
// @Router /api/auth/login/ [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "ValidationError", "Team name and password are required")
		return
	}

	result, err := c.AuthService.LoginOrRegister(ctx.Request.Context(), req.TeamID, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrValidation):
			util.BadRequest(ctx, "ValidationError", "Team name and password are required")
		case errors.Is(err, util.ErrInvalidCredentials):
			util.Unauthorized(ctx, "InvalidCredentials", "Team already exists with a different password")
		case errors.Is(err, util.ErrRegistrationFailed):
			util.BadRequest(ctx, "RegistrationFailed", "Registration failed")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	c.setSessionCookie(ctx, result.Token)

	payload := gin.H{"token": result.Token, "team": result.Team}
	if result.Created {
		util.Created(ctx, "Registration successful!", payload)
		return
	}
	util.Success(ctx, "Welcome back!", payload)
}

// Logout godoc
// @Summary Team logout
// @Description Revokes the session and clears the session cookie
// @Tags auth
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response "Logout successful"
// @Failure 401 {object} util.Response "No active session"
// @Router /api/auth/logout/ [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	team := util.GetTeamFromContext(ctx)
	if team == nil {
		util.Unauthorized(ctx, "NotAuthenticated", "Authentication required")
		return
	}

	if err := c.AuthService.Logout(ctx.Request.Context(), team); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.SetCookie(service.SessionCookieName, "", -1, "/", "", c.IsRelease, true)
	util.Success(ctx, "Logout successful", nil)
}

// CSRFToken godoc
// @Summary Issue CSRF token cookie
// @Tags auth
// @Produce  json
// @Success 200 {object} util.Response "CSRF cookie set"
// @Router /api/csrf/ [get]
func (c *AuthController) CSRFToken(ctx *gin.Context) {
	if _, err := security.IssueCSRFToken(ctx); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, "CSRF cookie set", nil)
}

func (c *AuthController) setSessionCookie(ctx *gin.Context, token string) {
	maxAge := int(c.AuthService.Cfg.JWT.ExpireTime.Seconds())
	ctx.SetCookie(service.SessionCookieName, token, maxAge, "/", "", c.IsRelease, true)
}
