package controller

import (
	"clue_quest_backend/internal/config"
	"clue_quest_backend/internal/model"
	"clue_quest_backend/internal/repository"
	"clue_quest_backend/internal/service"
	"clue_quest_backend/internal/util"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// LevelController is the staff-only catalog administration surface.
type LevelController struct {
	LevelRepo *repository.LevelRepository
	TeamRepo  *repository.TeamRepository
	Storage   *service.StorageService
	Cfg       *config.Config
}

func NewLevelController(levelRepo *repository.LevelRepository, teamRepo *repository.TeamRepository, storage *service.StorageService, cfg *config.Config) *LevelController {
	return &LevelController{
		LevelRepo: levelRepo,
		TeamRepo:  teamRepo,
		Storage:   storage,
		Cfg:       cfg,
	}
}

// ListLevels godoc
// @Summary List the full catalog, answers included
// @Tags admin
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Level}
// @Router /api/admin/levels [get]
func (c *LevelController) ListLevels(ctx *gin.Context) {
	levels, err := c.LevelRepo.ListOrdered()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	// Staff view carries the canonical answers the player view hides.
	type levelWithAnswer struct {
		model.Level
		Answer string `json:"answer"`
	}
	out := make([]levelWithAnswer, 0, len(levels))
	for _, l := range levels {
		out = append(out, levelWithAnswer{Level: l, Answer: l.Answer})
	}

	util.Success(ctx, "Catalog retrieved", out)
}

// swagger:model UpsertLevelRequest
type UpsertLevelRequest struct {
	LevelNumber   int    `json:"level_number" binding:"required,min=1"`
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description"`
	PuzzleContent string `json:"puzzle_content"`
	Answer        string `json:"answer" binding:"required"`
	Hint          string `json:"hint"`
	IsFinalLevel  bool   `json:"is_final_level"`
}

// UpsertLevel godoc
// @Summary Create or update a catalog level
// @Tags admin
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body UpsertLevelRequest true "Level definition"
// @Success 200 {object} util.Response{data=model.Level}
// @Failure 400 {object} util.Response
// @Router /api/admin/levels [post]
func (c *LevelController) UpsertLevel(ctx *gin.Context) {
	var req UpsertLevelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "ValidationError", err.Error())
		return
	}

	level, err := c.LevelRepo.FindByNumber(req.LevelNumber)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			util.LogInternalError(ctx, err)
			return
		}
		level = &model.Level{LevelNumber: req.LevelNumber}
	}

	level.Title = req.Title
	level.Description = req.Description
	level.PuzzleContent = req.PuzzleContent
	level.Answer = req.Answer
	level.Hint = req.Hint
	level.IsFinalLevel = req.IsFinalLevel

	if level.ID == 0 {
		err = c.LevelRepo.Create(level)
	} else {
		err = c.LevelRepo.Update(level)
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, "Level saved", level)
}

// UploadAsset godoc
// @Summary Upload a media asset for a level
// @Description Stores the file through the configured storage provider; video uploads are probed and length-checked
// @Tags admin
// @Accept  multipart/form-data
// @Produce  json
// @Security ApiKeyAuth
// @Param   levelNumber path int true "Level number"
// @Param   file formData file true "Asset file"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Router /api/admin/levels/{levelNumber}/asset [post]
func (c *LevelController) UploadAsset(ctx *gin.Context) {
	levelNumber, err := strconv.Atoi(ctx.Param("levelNumber"))
	if err != nil || levelNumber < 1 {
		util.BadRequest(ctx, "ValidationError", "Invalid level number")
		return
	}

	level, err := c.LevelRepo.FindByNumber(levelNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx, "LevelNotFound", "Level not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "ValidationError", "Asset file is required")
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if isVideoExt(ext) && c.Cfg.Game.MaxAssetVideoSeconds > 0 {
		// ffprobe needs a file on disk; spool the upload to a temp path.
		tmpPath := filepath.Join(os.TempDir(), fmt.Sprintf("quest_asset_%d%s", time.Now().UnixNano(), ext))
		if err := ctx.SaveUploadedFile(fileHeader, tmpPath); err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		defer os.Remove(tmpPath)

		info, err := util.GetVideoInfo(tmpPath)
		if err != nil {
			util.BadRequest(ctx, "ValidationError", "Unreadable video asset")
			return
		}
		if info.Duration > float64(c.Cfg.Game.MaxAssetVideoSeconds) {
			util.BadRequest(ctx, "ValidationError",
				fmt.Sprintf("Video asset too long: %.0fs exceeds the %ds limit", info.Duration, c.Cfg.Game.MaxAssetVideoSeconds))
			return
		}
	}

	src, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer src.Close()

	filename := fmt.Sprintf("levels/%d/%d%s", levelNumber, time.Now().UnixNano(), ext)
	url, err := c.Storage.Upload(ctx.Request.Context(), filename, src, fileHeader.Size, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	level.AssetURL = url
	if err := c.LevelRepo.Update(level); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, "Asset uploaded", gin.H{"asset_url": url})
}

// ListTeams godoc
// @Summary Scoreboard: teams by furthest level, fastest time first
// @Tags admin
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Team}
// @Router /api/admin/teams [get]
func (c *LevelController) ListTeams(ctx *gin.Context) {
	teams, err := c.TeamRepo.ListByRanking()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, "Teams retrieved", teams)
}

func isVideoExt(ext string) bool {
	switch ext {
	case ".mp4", ".mov", ".webm", ".mkv", ".avi":
		return true
	}
	return false
}
