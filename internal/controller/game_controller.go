package controller

import (
	"clue_quest_backend/internal/service"
	"clue_quest_backend/internal/util"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type GameController struct {
	GameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{GameService: gameService}
}

// GetCurrentLevel godoc
// @Summary Current level for the acting team
// @Description Returns the team's current puzzle, or a completed-game payload once the catalog is finished
// @Tags game
// @Produce  json
// @Param   X-Team-ID header string false "Fallback team identifier"
// @Success 200 {object} util.Response{data=service.LevelView} "Level content"
// @Failure 401 {object} util.Response "Not authenticated"
// @Failure 404 {object} util.Response "Unknown fallback team"
// @Failure 500 {object} util.Response "Catalog gap"
// @Router /api/game/level/ [get]
func (c *GameController) GetCurrentLevel(ctx *gin.Context) {
	team := util.GetTeamFromContext(ctx)

	levelView, completedView, err := c.GameService.GetCurrentLevel(team)
	if err != nil {
		if errors.Is(err, util.ErrLevelNotFound) {
			util.Fail(ctx, http.StatusInternalServerError, "LevelNotFound", "Level catalog is inconsistent")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	if completedView != nil {
		util.Success(ctx, "Game completed", gin.H{
			"is_completed": true,
			"completion":   completedView,
		})
		return
	}

	util.Success(ctx, "Level retrieved", gin.H{
		"is_completed": false,
		"level":        levelView,
	})
}

// swagger:model SubmitAnswerRequest
type SubmitAnswerRequest struct {
	Answer string `json:"answer"`
	// TeamID is only read by the fallback identity resolver.
	TeamID string `json:"team_id,omitempty"`
}

// SubmitAnswer godoc
// @Summary Submit an answer for the current level
// @Description Checks the answer against the canonical one (trim + lowercase); on a match the team advances one level
// @Tags game
// @Accept  json
// @Produce  json
// @Param   body body SubmitAnswerRequest true "Submitted answer"
// @Param   X-Team-ID header string false "Fallback team identifier"
// @Success 200 {object} util.Response{data=service.SubmitResult}
// @Failure 400 {object} util.Response "Empty answer"
// @Failure 401 {object} util.Response "Not authenticated"
// @Failure 404 {object} util.Response "Unknown fallback team"
// @Router /api/game/submit/ [post]
func (c *GameController) SubmitAnswer(ctx *gin.Context) {
	team := util.GetTeamFromContext(ctx)

	var req SubmitAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "ValidationError", "Answer is required")
		return
	}

	result, err := c.GameService.SubmitAnswer(team, req.Answer)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrValidation):
			util.BadRequest(ctx, "ValidationError", "Answer is required")
		case errors.Is(err, util.ErrLevelNotFound):
			util.Fail(ctx, http.StatusInternalServerError, "LevelNotFound", "Level catalog is inconsistent")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	if result.Correct {
		util.Success(ctx, "Correct answer!", result)
		return
	}
	util.Success(ctx, "Incorrect answer, try again", result)
}

// Status godoc
// @Summary Progress status of the logged-in team
// @Tags game
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.StatusView}
// @Failure 401 {object} util.Response "Not authenticated"
// @Router /api/game/status/ [get]
func (c *GameController) Status(ctx *gin.Context) {
	team := util.GetTeamFromContext(ctx)

	status, err := c.GameService.Status(team)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, "Status retrieved", status)
}

// swagger:model CompleteGameRequest
type CompleteGameRequest struct {
	TeamID                string `json:"team_id"`
	CompletionTimeSeconds int    `json:"completion_time_seconds"`
}

// CompleteGame godoc
// @Summary Record a client-computed completion time
// @Description Out-of-band finisher: stores the supplied elapsed time directly, creating the team on the fly if needed
// @Tags game
// @Accept  json
// @Produce  json
// @Param   body body CompleteGameRequest true "Completion data"
// @Success 200 {object} util.Response{data=model.Team}
// @Failure 400 {object} util.Response "Missing team id"
// @Router /api/complete/ [post]
func (c *GameController) CompleteGame(ctx *gin.Context) {
	var req CompleteGameRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "ValidationError", "Team ID is required")
		return
	}

	team, err := c.GameService.RecordCompletion(req.TeamID, req.CompletionTimeSeconds)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrValidation):
			util.BadRequest(ctx, "ValidationError", "Team ID is required")
		case errors.Is(err, util.ErrRegistrationFailed):
			util.BadRequest(ctx, "RegistrationFailed", "Failed to save completion")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, "Congratulations "+team.TeamID+"! Completion time recorded.", team)
}
