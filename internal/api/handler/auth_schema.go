package handler

import "github.com/procurex/committee-service/internal/core/domain"

// errorResponse documents the error envelope rendered by the central HTTP
// error handler.
type errorResponse struct {
	Error string `json:"error"`
}

type registerRequest struct {
	Name        string `json:"name"        validate:"required"`
	Email       string `json:"email"       validate:"required,email"`
	Password    string `json:"password"    validate:"required,min=6"`
	Role        string `json:"role"        validate:"required,oneof=admin procurement_officer committee_member evaluator bidder complaint_manager project_manager"`
	EmployeeID  string `json:"employeeId"  validate:"required"`
	Department  string `json:"department"  validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Designation string `json:"designation" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type resetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=6"`
}

type updatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword"     validate:"required,min=6"`
}

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user,omitempty"`
}

type userListResponse struct {
	Status  string         `json:"status"`
	Results int            `json:"results"`
	Users   []*domain.User `json:"users"`
}

type messageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
