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

// UserSkillHandler handles the self-declared skill endpoints
type UserSkillHandler struct {
	service services.UserSkillServiceInterface
}

// NewUserSkillHandler creates a new UserSkillHandler
func NewUserSkillHandler(service services.UserSkillServiceInterface) *UserSkillHandler {
	return &UserSkillHandler{service: service}
}

// Add handles POST /user-skills
// Declares a teachable skill for the caller
func (h *UserSkillHandler) Add(c *gin.Context) {
	session, err := middleware.GetUserSession(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Not logged in", err)
		return
	}

	var req models.AddUserSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorWithDetails(c, http.StatusBadRequest, "Invalid request", ParseValidationErrors(err), err)
		return
	}

	view, err := h.service.Add(c.Request.Context(), session, &req)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to add skill", err)
		return
	}

	c.JSON(http.StatusCreated, view)
}

// List handles GET /user-skills
// Returns the caller's own skill declarations
func (h *UserSkillHandler) List(c *gin.Context) {
	session, err := middleware.GetUserSession(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Not logged in", err)
		return
	}

	views, err := h.service.List(c.Request.Context(), session)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch skills", err)
		return
	}

	c.JSON(http.StatusOK, views)
}

// Update handles PUT /user-skills/:id
// Partially updates one of the caller's declarations
func (h *UserSkillHandler) Update(c *gin.Context) {
	session, err := middleware.GetUserSession(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Not logged in", err)
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "Invalid skill ID", err)
		return
	}

	var req models.UpdateUserSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorWithDetails(c, http.StatusBadRequest, "Invalid request", ParseValidationErrors(err), err)
		return
	}

	if err := h.service.Update(c.Request.Context(), session, id, &req); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Skill not found", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to update skill", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Delete handles DELETE /user-skills/:id
// Deleting a missing or foreign declaration succeeds with deleted=0
func (h *UserSkillHandler) Delete(c *gin.Context) {
	session, err := middleware.GetUserSession(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Not logged in", err)
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "Invalid skill ID", err)
		return
	}

	deleted, err := h.service.Delete(c.Request.Context(), session, id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to delete skill", err)
		return
	}

	c.JSON(http.StatusOK, models.DeleteCountResponse{Deleted: deleted})
}

// Browse handles GET /browse-skills
// Public marketplace view of every declared skill across all users
func (h *UserSkillHandler) Browse(c *gin.Context) {
	items, err := h.service.Browse(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to browse skills", err)
		return
	}

	c.JSON(http.StatusOK, items)
}
