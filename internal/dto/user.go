package dto

import (
	"time"

	"github.com/SscSPs/freight_management_app/internal/core/domain"
)

// CreateUserRequest defines the data needed to create a staff user.
type CreateUserRequest struct {
	Username string      `json:"username" binding:"required,min=3,max=50"`
	Password string      `json:"password" binding:"required,min=8,max=72"`
	FullName string      `json:"fullName" binding:"required,max=200"`
	Email    string      `json:"email" binding:"omitempty,email"`
	Phone    string      `json:"phone" binding:"omitempty,max=30"`
	Role     domain.Role `json:"role" binding:"required,userrole"`
}

// UpdateUserRequest defines the data allowed for updating a user.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateUserRequest struct {
	FullName *string      `json:"fullName" binding:"omitempty,max=200"`
	Email    *string      `json:"email" binding:"omitempty,email"`
	Phone    *string      `json:"phone" binding:"omitempty,max=30"`
	Role     *domain.Role `json:"role" binding:"omitempty,userrole"`
	IsActive *bool        `json:"isActive"`
}

// UserResponse defines the data returned for a user.
type UserResponse struct {
	UserID    string      `json:"userID"`
	Username  string      `json:"username"`
	FullName  string      `json:"fullName"`
	Email     string      `json:"email,omitempty"`
	Phone     string      `json:"phone,omitempty"`
	Role      domain.Role `json:"role"`
	IsActive  bool        `json:"isActive"`
	CreatedAt time.Time   `json:"createdAt"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:    user.UserID,
		Username:  user.Username,
		FullName:  user.FullName,
		Email:     user.Email,
		Phone:     user.Phone,
		Role:      user.Role,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToListUserResponse converts a slice of domain.User to ListUsersResponse DTO
func ToListUserResponse(users []domain.User) ListUsersResponse {
	userResponses := make([]UserResponse, len(users))
	for i := range users {
		userResponses[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{
		Users: userResponses,
	}
}

// MeResponse describes the signed-in user and the sections their role opens.
type MeResponse struct {
	User     UserResponse     `json:"user"`
	Sections []domain.Section `json:"sections"`
}

// ToMeResponse builds the profile response for a user.
func ToMeResponse(user *domain.User) MeResponse {
	return MeResponse{User: ToUserResponse(user), Sections: user.Role.Sections()}
}
