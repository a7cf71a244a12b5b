package models

import "time"

// Course represents a course offered by an instructor
type Course struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	InstructorID int       `json:"instructorId"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CourseListItem is the public directory view of a course, with the
// instructor email joined in.
type CourseListItem struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	Instructor string `json:"instructor"`
}

// CreateCourseRequest is the payload for creating a course
type CreateCourseRequest struct {
	Title string `json:"title" binding:"required,min=1,max=255"`
}
