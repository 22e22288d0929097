package model

import "time"

const (
	RoleMother   = "mother"
	RoleProvider = "provider"
	RoleOther    = "other"
)

// User represents an account in the system. A user is either unverified
// with a verification token set, or verified with the token cleared.
type User struct {
	ID                int        `json:"id"`
	Email             string     `json:"email"`
	Name              *string    `json:"name,omitempty"`
	PasswordHash      string     `json:"-"` // Do not expose password hash in JSON responses
	Role              string     `json:"role"`
	FacilityName      *string    `json:"facility_name,omitempty"`
	LicenseNumber     *string    `json:"license_number,omitempty"`
	DueDate           *time.Time `json:"due_date,omitempty"`
	IsVerified        bool       `json:"is_verified"`
	VerificationToken *string    `json:"-"` // Single-use, cleared on verify
	CreatedAt         time.Time  `json:"created_at"`
}

// RegisterRequest is the body for POST /api/auth/register
type RegisterRequest struct {
	Email         string     `json:"email" binding:"required,email"`
	Password      string     `json:"password" binding:"required,min=6"`
	Name          *string    `json:"name"`
	Role          *string    `json:"role" binding:"omitempty,oneof=mother provider other"`
	FacilityName  *string    `json:"facilityName"`
	LicenseNumber *string    `json:"licenseNumber"`
	DueDate       *time.Time `json:"dueDate"`
}

// LoginRequest is the body for POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ResendRequest is the body for POST /api/auth/resend
type ResendRequest struct {
	Email string `json:"email" binding:"required,email"`
}
