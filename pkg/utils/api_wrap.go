package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Abidstic/Manush-Tech/pkg/logger"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service-layer sentinel errors onto HTTP codes.
// Storage errors are logged with detail server-side and reported to the
// client as a generic internal error.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrPastDate):
		RespondError(c, http.StatusBadRequest, ErrPastDate.Error())
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusBadRequest, "Invalid email or password")
	case errors.Is(err, ErrAccessDenied):
		RespondError(c, http.StatusForbidden, "Access denied. Admin only.")
	case errors.Is(err, ErrUserBanned):
		RespondError(c, http.StatusForbidden, ErrUserBanned.Error())
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrScheduleNotFound),
		errors.Is(err, ErrItemNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, ErrEmailAlreadyExists.Error())
	case errors.Is(err, ErrInvalidWeekday),
		errors.Is(err, ErrInvalidMonth),
		errors.Is(err, ErrInvalidCategory):
		RespondError(c, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, ErrDatabaseError):
		logger.L().Errorw("database error", "trace_id", traceID(c), "error", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		logger.L().Errorw("unknown error", "trace_id", traceID(c), "error", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
