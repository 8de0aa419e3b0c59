package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError maps service-layer sentinel errors onto HTTP
// statuses. Missing records and not-yet-computed vectors are distinct
// conditions: the latter resolves itself once the embedding trigger
// has caught up, so callers get 412 and may retry.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUserNotFound):
		RespondError(c, http.StatusNotFound, "User not found")
	case errors.Is(err, ErrRoomNotFound):
		RespondError(c, http.StatusNotFound, "Room not found")
	case errors.Is(err, ErrVectorNotReady):
		RespondError(c, http.StatusPreconditionFailed, "Vector not computed yet, retry later")
	case errors.Is(err, ErrInvalidLimit):
		RespondError(c, http.StatusBadRequest, "Limit must be between 1 and 100")
	case errors.Is(err, ErrInvalidVector):
		log.Printf("Vector integrity error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusServiceUnavailable, "Service temporarily unavailable")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
