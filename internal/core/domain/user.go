package domain

import (
	"errors"
	"time"
)

// Roles a user can hold within the procurement portal.
const (
	RoleAdmin              = "admin"
	RoleProcurementOfficer = "procurement_officer"
	RoleCommitteeMember    = "committee_member"
	RoleEvaluator          = "evaluator"
	RoleBidder             = "bidder"
	RoleComplaintManager   = "complaint_manager"
	RoleProjectManager     = "project_manager"
)

var allRoles = map[string]struct{}{
	RoleAdmin:              {},
	RoleProcurementOfficer: {},
	RoleCommitteeMember:    {},
	RoleEvaluator:          {},
	RoleBidder:             {},
	RoleComplaintManager:   {},
	RoleProjectManager:     {},
}

// ValidRole reports whether role is one of the known role constants.
func ValidRole(role string) bool {
	_, ok := allRoles[role]
	return ok
}

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrAccountDisabled = errors.New("account is disabled")
var ErrResetTokenInvalid = errors.New("reset token is invalid or expired")

// User models an authenticated actor in the system. Email and EmployeeID are
// globally unique. The password is only ever held as a bcrypt hash and is
// never serialized out.
type User struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	PasswordHash      string    `json:"-"`
	Role              string    `json:"role"`
	EmployeeID        string    `json:"employeeId"`
	Department        string    `json:"department"`
	PhoneNumber       string    `json:"phoneNumber"`
	Designation       string    `json:"designation"`
	IsActive          bool      `json:"isActive"`
	PasswordChangedAt time.Time `json:"-"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}
