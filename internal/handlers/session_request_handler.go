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

// SessionRequestHandler handles the course session request endpoints
type SessionRequestHandler struct {
	service services.SessionRequestServiceInterface
}

// NewSessionRequestHandler creates a new SessionRequestHandler
func NewSessionRequestHandler(service services.SessionRequestServiceInterface) *SessionRequestHandler {
	return &SessionRequestHandler{service: service}
}

// Create handles POST /request
// Creates a pending session request for the authenticated student
func (h *SessionRequestHandler) Create(c *gin.Context) {
	session, err := middleware.GetUserSession(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Not logged in", err)
		return
	}

	var payload models.CreateSessionRequestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondErrorWithDetails(c, http.StatusBadRequest, "Invalid request", ParseValidationErrors(err), err)
		return
	}

	req, err := h.service.Create(c.Request.Context(), session, payload.CourseID)
	if err != nil {
		if errors.Is(err, services.ErrUnauthenticated) {
			respondError(c, http.StatusUnauthorized, "Not logged in", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to create request", err)
		return
	}

	c.JSON(http.StatusCreated, req)
}

// StudentSessions handles GET /student-sessions
// Returns the caller's own session requests
func (h *SessionRequestHandler) StudentSessions(c *gin.Context) {
	session, err := middleware.GetUserSession(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Not logged in", err)
		return
	}

	views, err := h.service.ListForStudent(c.Request.Context(), session)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch sessions", err)
		return
	}

	c.JSON(http.StatusOK, views)
}

// InstructorRequests handles GET /requests
// Returns the requests on courses owned by the calling instructor
func (h *SessionRequestHandler) InstructorRequests(c *gin.Context) {
	session, err := middleware.GetUserSession(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Not logged in", err)
		return
	}

	views, err := h.service.ListForInstructor(c.Request.Context(), session)
	if err != nil {
		if errors.Is(err, services.ErrForbidden) {
			respondError(c, http.StatusForbidden, "Instructor account required", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to fetch requests", err)
		return
	}

	c.JSON(http.StatusOK, views)
}

// UpdateStatus handles POST /requests/:id/:status
// Accepts or rejects a session request on a course owned by the caller
func (h *SessionRequestHandler) UpdateStatus(c *gin.Context) {
	session, err := middleware.GetUserSession(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Not logged in", err)
		return
	}

	requestID, err := strconv.Atoi(c.Param("id"))
	if err != nil || requestID <= 0 {
		respondError(c, http.StatusBadRequest, "Invalid request ID", err)
		return
	}

	status := models.RequestStatus(c.Param("status"))

	updated, err := h.service.SetStatus(c.Request.Context(), session, requestID, status)
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			respondError(c, http.StatusBadRequest, "Status must be 'accepted' or 'rejected'", err)
			return
		}
		if errors.Is(err, services.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Request not found", err)
			return
		}
		if errors.Is(err, services.ErrForbidden) {
			respondError(c, http.StatusForbidden, "Not your course", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to update request", err)
		return
	}

	c.JSON(http.StatusOK, models.UpdateCountResponse{Updated: updated})
}
