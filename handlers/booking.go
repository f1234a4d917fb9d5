package handlers

import (
	"net/http"

	"jobmate/middleware"
	"jobmate/services/booking"
	"jobmate/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking lifecycle endpoints.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler creates a BookingHandler backed by the given service.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// CreateHandler creates a priced pending booking for the acting customer.
func (h *BookingHandler) CreateHandler(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "")
		return
	}

	var input booking.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	created, err := h.Service.CreateBooking(actor, input)
	if err != nil {
		respondError(c, err)
		return
	}
	h.Logger.Info("booking created",
		zap.String("booking", created.ID),
		zap.String("customer", actor.ID),
		zap.Float64("totalCost", created.TotalCost),
	)
	c.JSON(http.StatusCreated, created)
}

// ListHandler returns the actor's bookings scoped by role.
func (h *BookingHandler) ListHandler(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "")
		return
	}

	bookings, err := h.Service.ListBookings(actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GetHandler returns one booking for a party to it.
func (h *BookingHandler) GetHandler(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "")
		return
	}

	found, err := h.Service.GetBooking(actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

// ActionHandler applies a status transition (accept, reject, start,
// complete, cancel) to a booking.
func (h *BookingHandler) ActionHandler(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "")
		return
	}

	bookingID := c.Param("id")
	action := booking.Action(c.Param("action"))

	updated, err := h.Service.Transition(actor, bookingID, action)
	if err != nil {
		respondError(c, err)
		return
	}
	h.Logger.Info("booking transitioned",
		zap.String("booking", updated.ID),
		zap.String("action", string(action)),
		zap.String("status", string(updated.Status)),
	)
	c.JSON(http.StatusOK, updated)
}

// AddWorkProofHandler attaches work-proof metadata to an active booking.
func (h *BookingHandler) AddWorkProofHandler(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "")
		return
	}

	var input booking.WorkProofInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	proof, err := h.Service.AddWorkProof(actor, c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, proof)
}

// ListWorkProofsHandler returns a booking's work proofs.
func (h *BookingHandler) ListWorkProofsHandler(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "")
		return
	}

	proofs, err := h.Service.GetWorkProofs(actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"work_proofs": proofs})
}
