package util

import (
	"clue_quest_backend/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Response 统一响应结构
type Response struct {
	Success bool        `json:"success"`
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func Success(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Code:    http.StatusOK,
		Message: message,
		Data:    data,
	})
}

func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Code:    http.StatusCreated,
		Message: message,
		Data:    data,
	})
}

// Fail reports a request failure with a machine-distinguishable kind and a
// human-readable message.
func Fail(c *gin.Context, code int, kind, message string) {
	c.JSON(code, Response{
		Success: false,
		Code:    code,
		Error:   kind,
		Message: message,
	})
}

func Unauthorized(c *gin.Context, kind, message string) {
	Fail(c, http.StatusUnauthorized, kind, message)
}

func BadRequest(c *gin.Context, kind, message string) {
	Fail(c, http.StatusBadRequest, kind, message)
}

func NotFound(c *gin.Context, kind, message string) {
	Fail(c, http.StatusNotFound, kind, message)
}

func Forbidden(c *gin.Context, message string) {
	Fail(c, http.StatusForbidden, "Forbidden", message)
}

func InternalServerError(c *gin.Context) {
	Fail(c, http.StatusInternalServerError, "InternalError", "Internal server error")
}

func LogInternalError(c *gin.Context, err error) {
	logger.Log.Error("Internal server error", zap.Error(err))
	InternalServerError(c)
}
