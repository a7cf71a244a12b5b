package services_test

import (
	"context"

	"github.com/skillhub/skillhub-api/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockUserStore is a mock implementation of repository.UserStore
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(ctx context.Context, email, passwordHash string, role models.Role) (*models.User, error) {
	args := m.Called(ctx, email, passwordHash, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) GetByID(ctx context.Context, id int) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) List(ctx context.Context) ([]models.UserListItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserListItem), args.Error(1)
}

// MockCourseStore is a mock implementation of repository.CourseStore
type MockCourseStore struct {
	mock.Mock
}

func (m *MockCourseStore) Create(ctx context.Context, title string, instructorID int) (*models.Course, error) {
	args := m.Called(ctx, title, instructorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Course), args.Error(1)
}

func (m *MockCourseStore) List(ctx context.Context) ([]models.CourseListItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CourseListItem), args.Error(1)
}

func (m *MockCourseStore) GetInstructorID(ctx context.Context, courseID int) (int, error) {
	args := m.Called(ctx, courseID)
	return args.Int(0), args.Error(1)
}

// MockSkillStore is a mock implementation of repository.SkillStore
type MockSkillStore struct {
	mock.Mock
}

func (m *MockSkillStore) Ensure(ctx context.Context, name string) (*models.Skill, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Skill), args.Error(1)
}

func (m *MockSkillStore) List(ctx context.Context) ([]models.Skill, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Skill), args.Error(1)
}

func (m *MockSkillStore) AddCourseSkill(ctx context.Context, courseID, skillID int) (*models.CourseSkillView, error) {
	args := m.Called(ctx, courseID, skillID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CourseSkillView), args.Error(1)
}

func (m *MockSkillStore) RemoveCourseSkill(ctx context.Context, courseID, skillID int) (int64, error) {
	args := m.Called(ctx, courseID, skillID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSkillStore) ListCourseSkills(ctx context.Context, courseID int) ([]models.CourseSkillView, error) {
	args := m.Called(ctx, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CourseSkillView), args.Error(1)
}

// MockUserSkillStore is a mock implementation of repository.UserSkillStore
type MockUserSkillStore struct {
	mock.Mock
}

func (m *MockUserSkillStore) Insert(ctx context.Context, userID, skillID int, level models.SkillLevel, description string) (*models.UserSkillView, error) {
	args := m.Called(ctx, userID, skillID, level, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserSkillView), args.Error(1)
}

func (m *MockUserSkillStore) ListForUser(ctx context.Context, userID int) ([]models.UserSkillView, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserSkillView), args.Error(1)
}

func (m *MockUserSkillStore) GetOwned(ctx context.Context, id, userID int) (*models.UserSkill, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserSkill), args.Error(1)
}

func (m *MockUserSkillStore) Update(ctx context.Context, id int, level models.SkillLevel, description string) (int64, error) {
	args := m.Called(ctx, id, level, description)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserSkillStore) DeleteOwned(ctx context.Context, id, userID int) (int64, error) {
	args := m.Called(ctx, id, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserSkillStore) Browse(ctx context.Context) ([]models.BrowseSkillItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BrowseSkillItem), args.Error(1)
}

// MockSessionRequestStore is a mock implementation of repository.SessionRequestStore
type MockSessionRequestStore struct {
	mock.Mock
}

func (m *MockSessionRequestStore) Create(ctx context.Context, userID, courseID int) (*models.SessionRequest, error) {
	args := m.Called(ctx, userID, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SessionRequest), args.Error(1)
}

func (m *MockSessionRequestStore) ListForStudent(ctx context.Context, userID int) ([]models.StudentSessionView, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.StudentSessionView), args.Error(1)
}

func (m *MockSessionRequestStore) ListForInstructor(ctx context.Context, instructorID int) ([]models.InstructorSessionView, error) {
	args := m.Called(ctx, instructorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.InstructorSessionView), args.Error(1)
}

func (m *MockSessionRequestStore) GetCourseInstructor(ctx context.Context, requestID int) (int, error) {
	args := m.Called(ctx, requestID)
	return args.Int(0), args.Error(1)
}

func (m *MockSessionRequestStore) UpdateStatus(ctx context.Context, requestID int, status models.RequestStatus) (int64, error) {
	args := m.Called(ctx, requestID, status)
	return args.Get(0).(int64), args.Error(1)
}

// MockSkillRequestStore is a mock implementation of repository.SkillRequestStore
type MockSkillRequestStore struct {
	mock.Mock
}

func (m *MockSkillRequestStore) Create(ctx context.Context, learnerID, mentorID, skillID int) (*models.SkillRequest, error) {
	args := m.Called(ctx, learnerID, mentorID, skillID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SkillRequest), args.Error(1)
}

func (m *MockSkillRequestStore) GetByID(ctx context.Context, id int) (*models.SkillRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SkillRequest), args.Error(1)
}

func (m *MockSkillRequestStore) ListReceived(ctx context.Context, mentorID int) ([]models.SkillRequestReceivedView, error) {
	args := m.Called(ctx, mentorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SkillRequestReceivedView), args.Error(1)
}

func (m *MockSkillRequestStore) ListSent(ctx context.Context, learnerID int) ([]models.SkillRequestSentView, error) {
	args := m.Called(ctx, learnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SkillRequestSentView), args.Error(1)
}

func (m *MockSkillRequestStore) UpdateStatus(ctx context.Context, requestID int, status models.RequestStatus) (int64, error) {
	args := m.Called(ctx, requestID, status)
	return args.Get(0).(int64), args.Error(1)
}
