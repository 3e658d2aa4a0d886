package dto

import (
	"github.com/wildtrack/wildlife-tracker/internal/app/models"
)

// CreateUserRequest is the body of POST /users
type CreateUserRequest struct {
	Username string           `json:"username" binding:"required,min=3,max=50" example:"ranger01"`
	Email    string           `json:"email" binding:"required,email,max=100" example:"ranger01@wildlifetracker.com"`
	Password string           `json:"password" binding:"required,min=8,max=72"`
	FullName *string          `json:"full_name" binding:"omitempty,max=100"`
	Role     *models.UserRole `json:"role" binding:"omitempty,oneof=admin ranger analyst viewer"`
}

// ToModel builds the account without its password hash; viewer is the default role
func (r *CreateUserRequest) ToModel() *models.User {
	return &models.User{
		Username: r.Username,
		Email:    r.Email,
		FullName: r.FullName,
		Role:     valueOr(r.Role, models.RoleViewer),
		IsActive: true,
	}
}

// UpdateUserRequest is the body of PUT /users/{id}. A non-empty password is re-hashed.
type UpdateUserRequest struct {
	Username *string          `json:"username" binding:"omitempty,min=3,max=50"`
	Email    *string          `json:"email" binding:"omitempty,email,max=100"`
	Password *string          `json:"password" binding:"omitempty,min=8,max=72"`
	FullName *string          `json:"full_name" binding:"omitempty,max=100"`
	Role     *models.UserRole `json:"role" binding:"omitempty,oneof=admin ranger analyst viewer"`
	IsActive *bool            `json:"is_active"`
}

// Apply merges everything except the password into an existing user
func (r *UpdateUserRequest) Apply(u *models.User) {
	patch(&u.Username, r.Username)
	patch(&u.Email, r.Email)
	patchOptional(&u.FullName, r.FullName)
	patch(&u.Role, r.Role)
	patch(&u.IsActive, r.IsActive)
}

// UserFilter narrows GET /users
type UserFilter struct {
	Role     *models.UserRole
	IsActive *bool
}
