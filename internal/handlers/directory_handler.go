package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skillhub/skillhub-api/internal/middleware"
	"github.com/skillhub/skillhub-api/internal/models"
	"github.com/skillhub/skillhub-api/internal/services"
)

// DirectoryHandler handles the user and course listing endpoints
type DirectoryHandler struct {
	service services.DirectoryServiceInterface
}

// NewDirectoryHandler creates a new DirectoryHandler
func NewDirectoryHandler(service services.DirectoryServiceInterface) *DirectoryHandler {
	return &DirectoryHandler{service: service}
}

// ListUsers handles GET /users
func (h *DirectoryHandler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch users", err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// ListCourses handles GET /courses
func (h *DirectoryHandler) ListCourses(c *gin.Context) {
	courses, err := h.service.ListCourses(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch courses", err)
		return
	}

	c.JSON(http.StatusOK, courses)
}

// CreateCourse handles POST /courses
func (h *DirectoryHandler) CreateCourse(c *gin.Context) {
	session, err := middleware.GetUserSession(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Not logged in", err)
		return
	}

	var req models.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorWithDetails(c, http.StatusBadRequest, "Invalid request", ParseValidationErrors(err), err)
		return
	}

	course, err := h.service.CreateCourse(c.Request.Context(), session, req.Title)
	if err != nil {
		if errors.Is(err, services.ErrForbidden) {
			respondError(c, http.StatusForbidden, "Only instructors can create courses", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to create course", err)
		return
	}

	c.JSON(http.StatusCreated, course)
}
