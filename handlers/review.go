package handlers

import (
	"net/http"

	"jobmate/middleware"
	"jobmate/services/review"
	"jobmate/utils"

	"github.com/gin-gonic/gin"
)

// ReviewHandler exposes review endpoints.
type ReviewHandler struct {
	Service review.ReviewService
}

// NewReviewHandler creates a ReviewHandler backed by the given service.
func NewReviewHandler(svc review.ReviewService) *ReviewHandler {
	return &ReviewHandler{Service: svc}
}

// CreateHandler reviews a completed booking.
func (h *ReviewHandler) CreateHandler(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "")
		return
	}

	var input review.CreateReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	created, err := h.Service.CreateReview(actor, c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetForBookingHandler returns a booking's review when one exists.
func (h *ReviewHandler) GetForBookingHandler(c *gin.Context) {
	found, err := h.Service.GetForBooking(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if found == nil {
		utils.JSONError(c, http.StatusNotFound, "no review for this booking", "")
		return
	}
	c.JSON(http.StatusOK, found)
}
