package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/skillhub/skillhub-api/internal/middleware"
	"github.com/skillhub/skillhub-api/internal/models"
	"github.com/skillhub/skillhub-api/internal/services"
)

// SkillHandler handles the skill vocabulary and course skill endpoints
type SkillHandler struct {
	service services.SkillServiceInterface
}

// NewSkillHandler creates a new SkillHandler
func NewSkillHandler(service services.SkillServiceInterface) *SkillHandler {
	return &SkillHandler{service: service}
}

// ListSkills handles GET /skills
func (h *SkillHandler) ListSkills(c *gin.Context) {
	skills, err := h.service.ListSkills(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch skills", err)
		return
	}

	c.JSON(http.StatusOK, skills)
}

// EnsureSkill handles POST /skills
// Returns the existing skill when the name is already known
func (h *SkillHandler) EnsureSkill(c *gin.Context) {
	if _, err := middleware.GetUserSession(c); err != nil {
		respondError(c, http.StatusUnauthorized, "Not logged in", err)
		return
	}

	var req models.EnsureSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorWithDetails(c, http.StatusBadRequest, "Invalid request", ParseValidationErrors(err), err)
		return
	}

	skill, err := h.service.EnsureSkill(c.Request.Context(), req.Name)
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			respondError(c, http.StatusBadRequest, "Skill name must not be empty", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to create skill", err)
		return
	}

	c.JSON(http.StatusOK, skill)
}

// ListCourseSkills handles GET /courses/:id/skills
func (h *SkillHandler) ListCourseSkills(c *gin.Context) {
	courseID, err := strconv.Atoi(c.Param("id"))
	if err != nil || courseID <= 0 {
		respondError(c, http.StatusBadRequest, "Invalid course ID", err)
		return
	}

	views, err := h.service.ListCourseSkills(c.Request.Context(), courseID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch course skills", err)
		return
	}

	c.JSON(http.StatusOK, views)
}

// AddCourseSkill handles POST /courses/:id/skills
// Attaches a skill to a course owned by the caller
func (h *SkillHandler) AddCourseSkill(c *gin.Context) {
	session, err := middleware.GetUserSession(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Not logged in", err)
		return
	}

	courseID, err := strconv.Atoi(c.Param("id"))
	if err != nil || courseID <= 0 {
		respondError(c, http.StatusBadRequest, "Invalid course ID", err)
		return
	}

	var req models.AddCourseSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorWithDetails(c, http.StatusBadRequest, "Invalid request", ParseValidationErrors(err), err)
		return
	}

	view, err := h.service.AddCourseSkill(c.Request.Context(), session, courseID, req.SkillID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Course not found", err)
			return
		}
		if errors.Is(err, services.ErrForbidden) {
			respondError(c, http.StatusForbidden, "Not your course", err)
			return
		}
		if errors.Is(err, services.ErrConflict) {
			respondError(c, http.StatusConflict, "Skill already attached", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to attach skill", err)
		return
	}

	c.JSON(http.StatusCreated, view)
}

// RemoveCourseSkill handles DELETE /courses/:id/skills/:skillId
// Detaching a skill that is not attached succeeds with deleted=0
func (h *SkillHandler) RemoveCourseSkill(c *gin.Context) {
	session, err := middleware.GetUserSession(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Not logged in", err)
		return
	}

	courseID, err := strconv.Atoi(c.Param("id"))
	if err != nil || courseID <= 0 {
		respondError(c, http.StatusBadRequest, "Invalid course ID", err)
		return
	}

	skillID, err := strconv.Atoi(c.Param("skillId"))
	if err != nil || skillID <= 0 {
		respondError(c, http.StatusBadRequest, "Invalid skill ID", err)
		return
	}

	deleted, err := h.service.RemoveCourseSkill(c.Request.Context(), session, courseID, skillID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Course not found", err)
			return
		}
		if errors.Is(err, services.ErrForbidden) {
			respondError(c, http.StatusForbidden, "Not your course", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to detach skill", err)
		return
	}

	c.JSON(http.StatusOK, models.DeleteCountResponse{Deleted: deleted})
}
