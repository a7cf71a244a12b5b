package models

// SkillLevel is a self-declared proficiency level on a user skill.
type SkillLevel string

const (
	LevelBeginner     SkillLevel = "Beginner"
	LevelIntermediate SkillLevel = "Intermediate"
	LevelAdvanced     SkillLevel = "Advanced"
)

// Skill is a deduplicated named tag shared across user and course
// skill associations. Names are matched exactly as stored: no case
// normalization, no trimming.
type Skill struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// UserSkill represents a self-declared teachable skill, owned
// exclusively by the user who created it.
type UserSkill struct {
	ID          int        `json:"id"`
	UserID      int        `json:"userId"`
	SkillID     int        `json:"skillId"`
	Level       SkillLevel `json:"level"`
	Description string     `json:"description"`
}

// UserSkillView is a user skill joined with its skill name
type UserSkillView struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Level       SkillLevel `json:"level"`
	Description string     `json:"description"`
}

// BrowseSkillItem is one row of the public skill marketplace view:
// a declared user skill joined with the owner's email and the skill name.
type BrowseSkillItem struct {
	ID          int        `json:"id"`
	UserID      int        `json:"user_id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	Level       SkillLevel `json:"level"`
	Description string     `json:"description"`
}

// CourseSkill links a course to a skill it teaches, unique per
// (course, skill) pair.
type CourseSkill struct {
	ID       int `json:"id"`
	CourseID int `json:"courseId"`
	SkillID  int `json:"skillId"`
}

// CourseSkillView is a course skill joined with the skill name
type CourseSkillView struct {
	ID      int    `json:"id"`
	SkillID int    `json:"skill_id"`
	Name    string `json:"name"`
}

// EnsureSkillRequest is the payload for get-or-create by name
type EnsureSkillRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

// AddUserSkillRequest is the payload for declaring a teachable skill.
// Repeated declarations create new rows, not merges.
type AddUserSkillRequest struct {
	Name        string     `json:"name" binding:"required,min=1,max=255"`
	Level       SkillLevel `json:"level" binding:"required,oneof=Beginner Intermediate Advanced"`
	Description string     `json:"description" binding:"max=2000"`
}

// UpdateUserSkillRequest is the payload for a partial user-skill update.
// Omitted fields retain their previous values.
type UpdateUserSkillRequest struct {
	Level       *SkillLevel `json:"level" binding:"omitempty,oneof=Beginner Intermediate Advanced"`
	Description *string     `json:"description" binding:"omitempty,max=2000"`
}

// AddCourseSkillRequest is the payload for tagging a course with a skill
type AddCourseSkillRequest struct {
	SkillID int `json:"skill_id" binding:"required,min=1"`
}
