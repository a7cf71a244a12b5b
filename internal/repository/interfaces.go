package repository

import (
	"context"

	"github.com/skillhub/skillhub-api/internal/models"
)

// UserStore defines the user account data access consumed by services
type UserStore interface {
	Create(ctx context.Context, email, passwordHash string, role models.Role) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
	List(ctx context.Context) ([]models.UserListItem, error)
}

// CourseStore defines the course data access consumed by services
type CourseStore interface {
	Create(ctx context.Context, title string, instructorID int) (*models.Course, error)
	List(ctx context.Context) ([]models.CourseListItem, error)
	GetInstructorID(ctx context.Context, courseID int) (int, error)
}

// SkillStore defines the skill vocabulary and course skill data access
// consumed by services
type SkillStore interface {
	Ensure(ctx context.Context, name string) (*models.Skill, error)
	List(ctx context.Context) ([]models.Skill, error)
	AddCourseSkill(ctx context.Context, courseID, skillID int) (*models.CourseSkillView, error)
	RemoveCourseSkill(ctx context.Context, courseID, skillID int) (int64, error)
	ListCourseSkills(ctx context.Context, courseID int) ([]models.CourseSkillView, error)
}

// UserSkillStore defines the self-declared skill data access consumed by
// services
type UserSkillStore interface {
	Insert(ctx context.Context, userID, skillID int, level models.SkillLevel, description string) (*models.UserSkillView, error)
	ListForUser(ctx context.Context, userID int) ([]models.UserSkillView, error)
	GetOwned(ctx context.Context, id, userID int) (*models.UserSkill, error)
	Update(ctx context.Context, id int, level models.SkillLevel, description string) (int64, error)
	DeleteOwned(ctx context.Context, id, userID int) (int64, error)
	Browse(ctx context.Context) ([]models.BrowseSkillItem, error)
}

// SessionRequestStore defines the session request data access consumed
// by the workflow engine
type SessionRequestStore interface {
	Create(ctx context.Context, userID, courseID int) (*models.SessionRequest, error)
	ListForStudent(ctx context.Context, userID int) ([]models.StudentSessionView, error)
	ListForInstructor(ctx context.Context, instructorID int) ([]models.InstructorSessionView, error)
	GetCourseInstructor(ctx context.Context, requestID int) (int, error)
	UpdateStatus(ctx context.Context, requestID int, status models.RequestStatus) (int64, error)
}

// SkillRequestStore defines the skill request data access consumed by
// the workflow engine
type SkillRequestStore interface {
	Create(ctx context.Context, learnerID, mentorID, skillID int) (*models.SkillRequest, error)
	GetByID(ctx context.Context, id int) (*models.SkillRequest, error)
	ListReceived(ctx context.Context, mentorID int) ([]models.SkillRequestReceivedView, error)
	ListSent(ctx context.Context, learnerID int) ([]models.SkillRequestSentView, error)
	UpdateStatus(ctx context.Context, requestID int, status models.RequestStatus) (int64, error)
}

// Ensure repositories implement their store interfaces
var _ UserStore = (*UserRepository)(nil)
var _ CourseStore = (*CourseRepository)(nil)
var _ SkillStore = (*SkillRepository)(nil)
var _ UserSkillStore = (*UserSkillRepository)(nil)
var _ SessionRequestStore = (*SessionRequestRepository)(nil)
var _ SkillRequestStore = (*SkillRequestRepository)(nil)
