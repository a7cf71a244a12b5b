package models

import "time"

// SkillRequest is a peer mentoring request from a learner to a mentor on
// one skill. At most one request may exist per (learner, mentor, skill)
// triple, regardless of status. Status is mutated only by the mentor.
type SkillRequest struct {
	ID        int           `json:"id"`
	LearnerID int           `json:"learnerId"`
	MentorID  int           `json:"mentorId"`
	SkillID   int           `json:"skillId"`
	Status    RequestStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// CreateSkillRequestPayload is the payload for requesting peer mentoring
type CreateSkillRequestPayload struct {
	MentorID int `json:"mentor_id" binding:"required,min=1"`
	SkillID  int `json:"skill_id" binding:"required,min=1"`
}

// SkillRequestReceivedView is a skill request as seen by its mentor,
// with learner email and skill name joined in.
type SkillRequestReceivedView struct {
	ID      int           `json:"id"`
	Learner string        `json:"learner"`
	Skill   string        `json:"skill"`
	Status  RequestStatus `json:"status"`
}

// SkillRequestSentView is a skill request as seen by its learner, with
// mentor email and skill name joined in.
type SkillRequestSentView struct {
	ID     int           `json:"id"`
	Mentor string        `json:"mentor"`
	Skill  string        `json:"skill"`
	Status RequestStatus `json:"status"`
}
