package handlers

import (
	"net/http"

	"jobmate/services/booking"
	"jobmate/utils"

	"github.com/gin-gonic/gin"
)

// statusForError maps service error codes to HTTP statuses.
func statusForError(err error) int {
	switch booking.CodeOf(err) {
	case booking.CodeInvalidAction, booking.CodeInvalidInput:
		return http.StatusBadRequest
	case booking.CodePermission:
		return http.StatusForbidden
	case booking.CodeNotFound:
		return http.StatusNotFound
	case booking.CodeConflict:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// respondError writes a service error with its mapped status.
func respondError(c *gin.Context, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		utils.JSONError(c, status, "Internal Server Error", err.Error())
		return
	}
	utils.JSONError(c, status, err.Error(), "")
}
