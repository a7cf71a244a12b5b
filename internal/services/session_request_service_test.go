package services_test

import (
	"context"
	"testing"

	"github.com/skillhub/skillhub-api/internal/models"
	"github.com/skillhub/skillhub-api/internal/repository"
	"github.com/skillhub/skillhub-api/internal/services"
	"github.com/stretchr/testify/assert"
)

func studentSession() *models.UserSession {
	return &models.UserSession{UserID: 5, Email: "student@example.com", Role: models.RoleUser}
}

func instructorSession() *models.UserSession {
	return &models.UserSession{UserID: 7, Email: "instructor@example.com", Role: models.RoleInstructor}
}

func TestSessionRequestService_Create(t *testing.T) {
	mockRepo := new(MockSessionRequestStore)
	service := services.NewSessionRequestService(mockRepo)
	ctx := context.Background()

	expected := &models.SessionRequest{ID: 1, UserID: 5, CourseID: 2, Status: models.StatusPending}
	mockRepo.On("Create", ctx, 5, 2).Return(expected, nil).Once()

	req, err := service.Create(ctx, studentSession(), 2)
	assert.NoError(t, err)
	assert.Equal(t, expected, req)

	mockRepo.AssertExpectations(t)
}

func TestSessionRequestService_Create_DuplicatesAllowed(t *testing.T) {
	mockRepo := new(MockSessionRequestStore)
	service := services.NewSessionRequestService(mockRepo)
	ctx := context.Background()

	// A second request for the same course is another pending row
	mockRepo.On("Create", ctx, 5, 2).Return(&models.SessionRequest{ID: 1, UserID: 5, CourseID: 2, Status: models.StatusPending}, nil).Once()
	mockRepo.On("Create", ctx, 5, 2).Return(&models.SessionRequest{ID: 2, UserID: 5, CourseID: 2, Status: models.StatusPending}, nil).Once()

	first, err := service.Create(ctx, studentSession(), 2)
	assert.NoError(t, err)
	second, err := service.Create(ctx, studentSession(), 2)
	assert.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	mockRepo.AssertExpectations(t)
}

func TestSessionRequestService_ListForInstructor_NonInstructor(t *testing.T) {
	mockRepo := new(MockSessionRequestStore)
	service := services.NewSessionRequestService(mockRepo)

	views, err := service.ListForInstructor(context.Background(), studentSession())
	assert.Nil(t, views)
	assert.ErrorIs(t, err, services.ErrForbidden)

	mockRepo.AssertNotCalled(t, "ListForInstructor")
}

func TestSessionRequestService_SetStatus_Accepted(t *testing.T) {
	mockRepo := new(MockSessionRequestStore)
	service := services.NewSessionRequestService(mockRepo)
	ctx := context.Background()

	mockRepo.On("GetCourseInstructor", ctx, 1).Return(7, nil).Once()
	mockRepo.On("UpdateStatus", ctx, 1, models.StatusAccepted).Return(int64(1), nil).Once()

	updated, err := service.SetStatus(ctx, instructorSession(), 1, models.StatusAccepted)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), updated)

	mockRepo.AssertExpectations(t)
}

func TestSessionRequestService_SetStatus_NotOwner(t *testing.T) {
	mockRepo := new(MockSessionRequestStore)
	service := services.NewSessionRequestService(mockRepo)
	ctx := context.Background()

	// Another instructor owns the course behind the request
	mockRepo.On("GetCourseInstructor", ctx, 1).Return(99, nil).Once()

	updated, err := service.SetStatus(ctx, instructorSession(), 1, models.StatusRejected)
	assert.Equal(t, int64(0), updated)
	assert.ErrorIs(t, err, services.ErrForbidden)

	mockRepo.AssertNotCalled(t, "UpdateStatus")
}

func TestSessionRequestService_SetStatus_InvalidTarget(t *testing.T) {
	mockRepo := new(MockSessionRequestStore)
	service := services.NewSessionRequestService(mockRepo)

	updated, err := service.SetStatus(context.Background(), instructorSession(), 1, models.StatusPending)
	assert.Equal(t, int64(0), updated)
	assert.ErrorIs(t, err, services.ErrInvalidStatus)

	mockRepo.AssertNotCalled(t, "GetCourseInstructor")
}

func TestSessionRequestService_SetStatus_NotFound(t *testing.T) {
	mockRepo := new(MockSessionRequestStore)
	service := services.NewSessionRequestService(mockRepo)
	ctx := context.Background()

	mockRepo.On("GetCourseInstructor", ctx, 42).Return(0, repository.ErrNotFound).Once()

	updated, err := service.SetStatus(ctx, instructorSession(), 42, models.StatusAccepted)
	assert.Equal(t, int64(0), updated)
	assert.ErrorIs(t, err, services.ErrNotFound)

	mockRepo.AssertExpectations(t)
}

func TestSessionRequestService_ListForStudent(t *testing.T) {
	mockRepo := new(MockSessionRequestStore)
	service := services.NewSessionRequestService(mockRepo)
	ctx := context.Background()

	expected := []models.StudentSessionView{
		{ID: 1, Title: "Go Fundamentals", Status: models.StatusPending},
	}
	mockRepo.On("ListForStudent", ctx, 5).Return(expected, nil).Once()

	views, err := service.ListForStudent(ctx, studentSession())
	assert.NoError(t, err)
	assert.Equal(t, expected, views)

	mockRepo.AssertExpectations(t)
}
