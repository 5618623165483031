// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import "github.com/fitlog/fitlog/internal/model"

// CreateUserRequest represents the request body for registering a user.
type CreateUserRequest struct {
	Username string `json:"username"`
}

// UserResponse represents a user in API responses.
// Only username and id are exposed; exercise data is never included here.
type UserResponse struct {
	Username string `json:"username"`
	ID       string `json:"id"`
}

// ToUserResponse converts a User model to UserResponse DTO.
func ToUserResponse(user *model.User) *UserResponse {
	return &UserResponse{
		Username: user.Username,
		ID:       user.ID,
	}
}

// ToUserListResponse converts a slice of User models to response DTOs.
// Always returns a non-nil slice so an empty list encodes as [] rather than null.
func ToUserListResponse(users []*model.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, *ToUserResponse(user))
	}
	return responses
}
