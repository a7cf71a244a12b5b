package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/skillhub/skillhub-api/internal/middleware"
	"github.com/skillhub/skillhub-api/internal/models"
	"github.com/skillhub/skillhub-api/internal/services"
	"github.com/skillhub/skillhub-api/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func init() {
	gin.SetMode(gin.TestMode)
	if err := logger.Initialize(logger.Config{
		Level:       "debug",
		Environment: "development",
	}); err != nil {
		panic(err)
	}
}

// MockSessionRequestService is a mock implementation of SessionRequestServiceInterface
type MockSessionRequestService struct {
	mock.Mock
}

func (m *MockSessionRequestService) Create(ctx context.Context, session *models.UserSession, courseID int) (*models.SessionRequest, error) {
	args := m.Called(ctx, session, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SessionRequest), args.Error(1)
}

func (m *MockSessionRequestService) ListForStudent(ctx context.Context, session *models.UserSession) ([]models.StudentSessionView, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.StudentSessionView), args.Error(1)
}

func (m *MockSessionRequestService) ListForInstructor(ctx context.Context, session *models.UserSession) ([]models.InstructorSessionView, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.InstructorSessionView), args.Error(1)
}

func (m *MockSessionRequestService) SetStatus(ctx context.Context, session *models.UserSession, requestID int, newStatus models.RequestStatus) (int64, error) {
	args := m.Called(ctx, session, requestID, newStatus)
	return args.Get(0).(int64), args.Error(1)
}

func withSession(session *models.UserSession) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.SessionContextKey, session)
		c.Next()
	}
}

func TestSessionRequestHandler_UpdateStatus(t *testing.T) {
	mockService := new(MockSessionRequestService)
	handler := NewSessionRequestHandler(mockService)
	session := &models.UserSession{UserID: 7, Role: models.RoleInstructor}

	router := gin.New()
	router.POST("/requests/:id/:status", withSession(session), handler.UpdateStatus)

	mockService.On("SetStatus", mock.Anything, session, 5, models.StatusAccepted).Return(int64(1), nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/requests/5/accepted", http.NoBody)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"updated":1}`, w.Body.String())

	mockService.AssertExpectations(t)
}

func TestSessionRequestHandler_UpdateStatus_InvalidStatus(t *testing.T) {
	mockService := new(MockSessionRequestService)
	handler := NewSessionRequestHandler(mockService)
	session := &models.UserSession{UserID: 7, Role: models.RoleInstructor}

	router := gin.New()
	router.POST("/requests/:id/:status", withSession(session), handler.UpdateStatus)

	mockService.On("SetStatus", mock.Anything, session, 5, models.RequestStatus("pending")).
		Return(int64(0), services.ErrInvalidStatus).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/requests/5/pending", http.NoBody)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	mockService.AssertExpectations(t)
}

func TestSessionRequestHandler_UpdateStatus_Forbidden(t *testing.T) {
	mockService := new(MockSessionRequestService)
	handler := NewSessionRequestHandler(mockService)
	session := &models.UserSession{UserID: 8, Role: models.RoleInstructor}

	router := gin.New()
	router.POST("/requests/:id/:status", withSession(session), handler.UpdateStatus)

	mockService.On("SetStatus", mock.Anything, session, 5, models.StatusRejected).
		Return(int64(0), services.ErrForbidden).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/requests/5/rejected", http.NoBody)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)

	mockService.AssertExpectations(t)
}

func TestSessionRequestHandler_UpdateStatus_BadID(t *testing.T) {
	mockService := new(MockSessionRequestService)
	handler := NewSessionRequestHandler(mockService)
	session := &models.UserSession{UserID: 7, Role: models.RoleInstructor}

	router := gin.New()
	router.POST("/requests/:id/:status", withSession(session), handler.UpdateStatus)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/requests/abc/accepted", http.NoBody)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	mockService.AssertNotCalled(t, "SetStatus")
}

func TestSessionRequestHandler_Create_NoSession(t *testing.T) {
	mockService := new(MockSessionRequestService)
	handler := NewSessionRequestHandler(mockService)

	router := gin.New()
	router.POST("/request", handler.Create)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/request", strings.NewReader(`{"course_id":2}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	mockService.AssertNotCalled(t, "Create")
}
