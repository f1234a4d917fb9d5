package handlers

import (
	"net/http"

	"jobmate/services/admin"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes the analytics dashboard and verification endpoints.
type AdminHandler struct {
	Service admin.AdminService
}

// NewAdminHandler creates an AdminHandler backed by the given service.
func NewAdminHandler(svc admin.AdminService) *AdminHandler {
	return &AdminHandler{Service: svc}
}

// DashboardHandler returns the analytics snapshot.
func (h *AdminHandler) DashboardHandler(c *gin.Context) {
	stats, err := h.Service.Dashboard()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// VerifyEmployeeHandler approves an employee's registration.
func (h *AdminHandler) VerifyEmployeeHandler(c *gin.Context) {
	if err := h.Service.VerifyEmployee(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"verified": true})
}
