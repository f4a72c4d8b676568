package api

import "github.com/inkwell-dev/inkwell/internal/domain"

type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse never includes the password hash.
type UserResponse struct {
	Id    domain.UserId `json:"id"`
	Email domain.Email  `json:"email"`
}
