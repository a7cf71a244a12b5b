package models

import "time"

// Role determines which side of the course workflow a user can act on.
type Role string

const (
	RoleUser       Role = "user"
	RoleInstructor Role = "instructor"
)

// IsValid reports whether the role belongs to the closed role set.
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleInstructor
}

// User represents a registered account
type User struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UserSession is the per-connection authenticated identity passed into
// every engine operation. It carries no transport concerns.
type UserSession struct {
	UserID    int    `json:"user_id"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	ExpiresAt int64  `json:"exp"`
	IssuedAt  int64  `json:"iat"`
}

// IsInstructor reports whether the session belongs to an instructor account.
func (s *UserSession) IsInstructor() bool {
	return s != nil && s.Role == RoleInstructor
}

// RegisterRequest is the payload for account registration
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=6,max=72"`
	Role     Role   `json:"role" binding:"omitempty,oneof=user instructor"`
}

// RegisterResponse is returned after successful registration
type RegisterResponse struct {
	Success bool `json:"success"`
	UserID  int  `json:"userId"`
}

// LoginRequest is the payload for credential login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,max=72"`
}

// LoginResponse is returned after successful login. Role lets the client
// route to the right landing page.
type LoginResponse struct {
	Success bool         `json:"success"`
	Session *UserSession `json:"session,omitempty"`
	Error   string       `json:"error,omitempty"`
}

// LogoutResponse is returned after logout
type LogoutResponse struct {
	Success bool `json:"success"`
}

// UserListItem is the public directory view of a user
type UserListItem struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}
