package handlers

import (
	"net/http"
	"strconv"

	"jobmate/middleware"
	"jobmate/services/matching"
	"jobmate/services/review"
	userService "jobmate/services/user"
	"jobmate/utils"

	"github.com/gin-gonic/gin"
)

// EmployeeHandler exposes browse, match, search and profile endpoints.
type EmployeeHandler struct {
	Matching    matching.MatchingService
	Reviews     review.ReviewService
	UserService userService.UserService
}

// NewEmployeeHandler creates an EmployeeHandler backed by the given services.
func NewEmployeeHandler(m matching.MatchingService, r review.ReviewService, u userService.UserService) *EmployeeHandler {
	return &EmployeeHandler{Matching: m, Reviews: r, UserService: u}
}

// BrowseHandler lists top-rated available employees, or runs smart search
// when a query is given.
func (h *EmployeeHandler) BrowseHandler(c *gin.Context) {
	if query := c.Query("q"); query != "" {
		profiles, err := h.Matching.SmartSearch(query)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"query": query, "profiles": profiles})
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))
	profiles, err := h.Matching.TopRated(limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profiles": profiles})
}

// MatchHandler ranks available employees against explicit criteria.
func (h *EmployeeHandler) MatchHandler(c *gin.Context) {
	var req matching.RankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			req.Limit = limit
		}
	}

	ranked, err := h.Matching.RankEmployees(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": ranked})
}

// UpdateProfileHandler patches the acting employee's profile.
func (h *EmployeeHandler) UpdateProfileHandler(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "")
		return
	}

	var input userService.EmployeeProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	profile, err := h.UserService.UpdateEmployeeProfile(actor, input)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "profile update failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, profile)
}

// ListReviewsHandler returns an employee's reviews, newest first.
func (h *EmployeeHandler) ListReviewsHandler(c *gin.Context) {
	employeeID := c.Param("id")
	reviews, err := h.Reviews.ListForEmployee(employeeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}
