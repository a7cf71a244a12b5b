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

// SkillRequestHandler handles the peer skill request endpoints
type SkillRequestHandler struct {
	service services.SkillRequestServiceInterface
}

// NewSkillRequestHandler creates a new SkillRequestHandler
func NewSkillRequestHandler(service services.SkillRequestServiceInterface) *SkillRequestHandler {
	return &SkillRequestHandler{service: service}
}

// Create handles POST /skill-request
// Creates a pending request from the caller to a mentor on one skill
func (h *SkillRequestHandler) Create(c *gin.Context) {
	session, err := middleware.GetUserSession(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Not logged in", err)
		return
	}

	var payload models.CreateSkillRequestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondErrorWithDetails(c, http.StatusBadRequest, "Invalid request", ParseValidationErrors(err), err)
		return
	}

	req, err := h.service.Create(c.Request.Context(), session, payload.MentorID, payload.SkillID)
	if err != nil {
		if errors.Is(err, services.ErrSelfRequest) {
			respondError(c, http.StatusBadRequest, "Cannot request mentoring from yourself", err)
			return
		}
		if errors.Is(err, services.ErrDuplicateRequest) {
			respondError(c, http.StatusConflict, "Request already exists", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to create request", err)
		return
	}

	c.JSON(http.StatusCreated, req)
}

// Received handles GET /skill-requests-received
// Returns requests where the caller is the mentor, pending first
func (h *SkillRequestHandler) Received(c *gin.Context) {
	session, err := middleware.GetUserSession(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Not logged in", err)
		return
	}

	views, err := h.service.ListReceived(c.Request.Context(), session)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch requests", err)
		return
	}

	c.JSON(http.StatusOK, views)
}

// Sent handles GET /skill-requests-sent
// Returns requests where the caller is the learner, pending first
func (h *SkillRequestHandler) Sent(c *gin.Context) {
	session, err := middleware.GetUserSession(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Not logged in", err)
		return
	}

	views, err := h.service.ListSent(c.Request.Context(), session)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch requests", err)
		return
	}

	c.JSON(http.StatusOK, views)
}

// UpdateStatus handles POST /skill-requests/:id/:status
// Accepts or rejects a skill request addressed to the caller
func (h *SkillRequestHandler) UpdateStatus(c *gin.Context) {
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
			respondError(c, http.StatusForbidden, "Not your request", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to update request", err)
		return
	}

	c.JSON(http.StatusOK, models.UpdateCountResponse{Updated: updated})
}
