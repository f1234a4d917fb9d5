package handlers

import (
	"net/http"

	skillRepo "jobmate/database/repository/skill"
	"jobmate/models"
	"jobmate/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SkillHandler exposes the skill catalogue.
type SkillHandler struct {
	Repo skillRepo.SkillRepository
}

// NewSkillHandler creates a SkillHandler backed by the given repository.
func NewSkillHandler(repo skillRepo.SkillRepository) *SkillHandler {
	return &SkillHandler{Repo: repo}
}

// ListHandler returns the full skill catalogue.
func (h *SkillHandler) ListHandler(c *gin.Context) {
	skills, err := h.Repo.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"skills": skills})
}

// CreateHandler adds a skill to the catalogue. Admin only.
func (h *SkillHandler) CreateHandler(c *gin.Context) {
	var input struct {
		Name     string `json:"name" binding:"required"`
		Category string `json:"category"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if existing, err := h.Repo.GetByName(input.Name); err != nil {
		respondError(c, err)
		return
	} else if existing != nil {
		utils.JSONError(c, http.StatusConflict, "skill already exists", input.Name)
		return
	}

	skill := &models.Skill{
		ID:       uuid.New().String(),
		Name:     input.Name,
		Category: input.Category,
	}
	if err := h.Repo.Create(skill); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, skill)
}
