package request

import (
	"travel-backoffice/internal/usecase/commands"
)

type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=admin staff"`
}

func (r *CreateUserRequest) ToInput() commands.UserInput {
	return commands.UserInput{Username: r.Username, Email: r.Email, Password: r.Password, Role: r.Role}
}

type UpdateUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"omitempty,min=8"`
	Role     string `json:"role" binding:"required,oneof=admin staff"`
}

// ToInput passes an empty password through, which keeps the stored one.
func (r *UpdateUserRequest) ToInput() commands.UserInput {
	return commands.UserInput{Username: r.Username, Email: r.Email, Password: r.Password, Role: r.Role}
}
