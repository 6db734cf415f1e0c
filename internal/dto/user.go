package dto

import "github.com/mecmec98/billingrestapi/internal/core/domain"

// LoginRequest is the body of POST /users/login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued bearer token and the resolved identity.
type LoginResponse struct {
	Token    string `json:"token"`
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// CreateUserRequest is the body of POST /users/.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role"`
}

// UpdatePasswordRequest is the body of PUT /users/:id/password.
type UpdatePasswordRequest struct {
	Password string `json:"password" binding:"required,min=8"`
}

// UserResponse is the wire shape of a user; the password hash never leaves
// the service layer.
type UserResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// ToUserResponse converts a domain.User to its wire shape.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{ID: u.ID, Username: u.Username, Role: u.Role}
}

// ToUserResponses converts a slice of domain users to wire shapes.
func ToUserResponses(users []domain.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = ToUserResponse(&users[i])
	}
	return out
}
