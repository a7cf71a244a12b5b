package services

import (
	"context"

	"github.com/skillhub/skillhub-api/internal/models"
)

// AuthServiceInterface defines the identity operations consumed by
// handlers
type AuthServiceInterface interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (string, *models.UserSession, error)
}

// DirectoryServiceInterface defines the user and course listing
// operations consumed by handlers
type DirectoryServiceInterface interface {
	ListUsers(ctx context.Context) ([]models.UserListItem, error)
	ListCourses(ctx context.Context) ([]models.CourseListItem, error)
	CreateCourse(ctx context.Context, session *models.UserSession, title string) (*models.Course, error)
}

// SkillServiceInterface defines the skill vocabulary and course skill
// operations consumed by handlers
type SkillServiceInterface interface {
	EnsureSkill(ctx context.Context, name string) (*models.Skill, error)
	ListSkills(ctx context.Context) ([]models.Skill, error)
	AddCourseSkill(ctx context.Context, session *models.UserSession, courseID, skillID int) (*models.CourseSkillView, error)
	RemoveCourseSkill(ctx context.Context, session *models.UserSession, courseID, skillID int) (int64, error)
	ListCourseSkills(ctx context.Context, courseID int) ([]models.CourseSkillView, error)
}

// UserSkillServiceInterface defines the self-declared skill operations
// consumed by handlers
type UserSkillServiceInterface interface {
	Add(ctx context.Context, session *models.UserSession, req *models.AddUserSkillRequest) (*models.UserSkillView, error)
	List(ctx context.Context, session *models.UserSession) ([]models.UserSkillView, error)
	Update(ctx context.Context, session *models.UserSession, id int, req *models.UpdateUserSkillRequest) error
	Delete(ctx context.Context, session *models.UserSession, id int) (int64, error)
	Browse(ctx context.Context) ([]models.BrowseSkillItem, error)
}

// SessionRequestServiceInterface defines the course session request
// workflow consumed by handlers
type SessionRequestServiceInterface interface {
	Create(ctx context.Context, session *models.UserSession, courseID int) (*models.SessionRequest, error)
	ListForStudent(ctx context.Context, session *models.UserSession) ([]models.StudentSessionView, error)
	ListForInstructor(ctx context.Context, session *models.UserSession) ([]models.InstructorSessionView, error)
	SetStatus(ctx context.Context, session *models.UserSession, requestID int, newStatus models.RequestStatus) (int64, error)
}

// SkillRequestServiceInterface defines the peer skill request workflow
// consumed by handlers
type SkillRequestServiceInterface interface {
	Create(ctx context.Context, session *models.UserSession, mentorID, skillID int) (*models.SkillRequest, error)
	ListReceived(ctx context.Context, session *models.UserSession) ([]models.SkillRequestReceivedView, error)
	ListSent(ctx context.Context, session *models.UserSession) ([]models.SkillRequestSentView, error)
	SetStatus(ctx context.Context, session *models.UserSession, requestID int, newStatus models.RequestStatus) (int64, error)
}

// Ensure services implement their interfaces
var _ AuthServiceInterface = (*AuthService)(nil)
var _ DirectoryServiceInterface = (*DirectoryService)(nil)
var _ SkillServiceInterface = (*SkillService)(nil)
var _ UserSkillServiceInterface = (*UserSkillService)(nil)
var _ SessionRequestServiceInterface = (*SessionRequestService)(nil)
var _ SkillRequestServiceInterface = (*SkillRequestService)(nil)
