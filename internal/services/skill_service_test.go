package services_test

import (
	"context"
	"testing"

	"github.com/skillhub/skillhub-api/internal/models"
	"github.com/skillhub/skillhub-api/internal/repository"
	"github.com/skillhub/skillhub-api/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestSkillService_EnsureSkill(t *testing.T) {
	mockSkillRepo := new(MockSkillStore)
	mockCourseRepo := new(MockCourseStore)
	service := services.NewSkillService(mockSkillRepo, mockCourseRepo)
	ctx := context.Background()

	expected := &models.Skill{ID: 1, Name: "Go"}
	mockSkillRepo.On("Ensure", ctx, "Go").Return(expected, nil).Twice()

	first, err := service.EnsureSkill(ctx, "Go")
	assert.NoError(t, err)
	second, err := service.EnsureSkill(ctx, "Go")
	assert.NoError(t, err)

	// Repeated ensures converge on the same id
	assert.Equal(t, first.ID, second.ID)

	mockSkillRepo.AssertExpectations(t)
}

func TestSkillService_EnsureSkill_EmptyName(t *testing.T) {
	mockSkillRepo := new(MockSkillStore)
	mockCourseRepo := new(MockCourseStore)
	service := services.NewSkillService(mockSkillRepo, mockCourseRepo)

	skill, err := service.EnsureSkill(context.Background(), "")
	assert.Nil(t, skill)
	assert.ErrorIs(t, err, services.ErrInvalidStatus)

	mockSkillRepo.AssertNotCalled(t, "Ensure")
}

func TestSkillService_AddCourseSkill(t *testing.T) {
	mockSkillRepo := new(MockSkillStore)
	mockCourseRepo := new(MockCourseStore)
	service := services.NewSkillService(mockSkillRepo, mockCourseRepo)
	ctx := context.Background()
	owner := &models.UserSession{UserID: 7, Role: models.RoleInstructor}

	mockCourseRepo.On("GetInstructorID", ctx, 2).Return(7, nil).Once()
	mockSkillRepo.On("AddCourseSkill", ctx, 2, 3).Return(&models.CourseSkillView{ID: 1, SkillID: 3, Name: "Go"}, nil).Once()

	view, err := service.AddCourseSkill(ctx, owner, 2, 3)
	assert.NoError(t, err)
	assert.Equal(t, "Go", view.Name)

	mockCourseRepo.AssertExpectations(t)
	mockSkillRepo.AssertExpectations(t)
}

func TestSkillService_AddCourseSkill_NotOwner(t *testing.T) {
	mockSkillRepo := new(MockSkillStore)
	mockCourseRepo := new(MockCourseStore)
	service := services.NewSkillService(mockSkillRepo, mockCourseRepo)
	ctx := context.Background()
	caller := &models.UserSession{UserID: 8, Role: models.RoleInstructor}

	mockCourseRepo.On("GetInstructorID", ctx, 2).Return(7, nil).Once()

	view, err := service.AddCourseSkill(ctx, caller, 2, 3)
	assert.Nil(t, view)
	assert.ErrorIs(t, err, services.ErrForbidden)

	mockSkillRepo.AssertNotCalled(t, "AddCourseSkill")
}

func TestSkillService_AddCourseSkill_CourseMissing(t *testing.T) {
	mockSkillRepo := new(MockSkillStore)
	mockCourseRepo := new(MockCourseStore)
	service := services.NewSkillService(mockSkillRepo, mockCourseRepo)
	ctx := context.Background()
	caller := &models.UserSession{UserID: 7, Role: models.RoleInstructor}

	mockCourseRepo.On("GetInstructorID", ctx, 99).Return(0, repository.ErrNotFound).Once()

	view, err := service.AddCourseSkill(ctx, caller, 99, 3)
	assert.Nil(t, view)
	assert.ErrorIs(t, err, services.ErrNotFound)

	mockSkillRepo.AssertNotCalled(t, "AddCourseSkill")
}

func TestSkillService_AddCourseSkill_AlreadyAttached(t *testing.T) {
	mockSkillRepo := new(MockSkillStore)
	mockCourseRepo := new(MockCourseStore)
	service := services.NewSkillService(mockSkillRepo, mockCourseRepo)
	ctx := context.Background()
	owner := &models.UserSession{UserID: 7, Role: models.RoleInstructor}

	mockCourseRepo.On("GetInstructorID", ctx, 2).Return(7, nil).Once()
	mockSkillRepo.On("AddCourseSkill", ctx, 2, 3).Return(nil, repository.ErrDuplicateKey).Once()

	view, err := service.AddCourseSkill(ctx, owner, 2, 3)
	assert.Nil(t, view)
	assert.ErrorIs(t, err, services.ErrConflict)

	mockSkillRepo.AssertExpectations(t)
}

func TestSkillService_RemoveCourseSkill_NotAttached(t *testing.T) {
	mockSkillRepo := new(MockSkillStore)
	mockCourseRepo := new(MockCourseStore)
	service := services.NewSkillService(mockSkillRepo, mockCourseRepo)
	ctx := context.Background()
	owner := &models.UserSession{UserID: 7, Role: models.RoleInstructor}

	mockCourseRepo.On("GetInstructorID", ctx, 2).Return(7, nil).Once()
	mockSkillRepo.On("RemoveCourseSkill", ctx, 2, 3).Return(int64(0), nil).Once()

	// Detaching a skill that was never attached is not an error
	deleted, err := service.RemoveCourseSkill(ctx, owner, 2, 3)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), deleted)

	mockSkillRepo.AssertExpectations(t)
}
