package models

import "time"

// SessionRequest is a student's request for a course session. Status is
// mutated only by the course's instructor.
type SessionRequest struct {
	ID        int           `json:"id"`
	UserID    int           `json:"userId"`
	CourseID  int           `json:"courseId"`
	Status    RequestStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// CreateSessionRequestPayload is the payload for requesting a course session
type CreateSessionRequestPayload struct {
	CourseID int `json:"course_id" binding:"required,min=1"`
}

// StudentSessionView is a session request as seen by the requesting
// student, with the course title joined in.
type StudentSessionView struct {
	ID     int           `json:"id"`
	Title  string        `json:"title"`
	Status RequestStatus `json:"status"`
}

// InstructorSessionView is a session request as seen by the instructor
// owning the course, with student email and course title joined in.
type InstructorSessionView struct {
	ID      int           `json:"id"`
	Student string        `json:"student"`
	Title   string        `json:"title"`
	Status  RequestStatus `json:"status"`
}

// UpdateCountResponse reports how many rows a status update or delete
// affected.
type UpdateCountResponse struct {
	Updated int64 `json:"updated"`
}

// DeleteCountResponse reports how many rows a scoped delete removed.
type DeleteCountResponse struct {
	Deleted int64 `json:"deleted"`
}
