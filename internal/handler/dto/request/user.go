package request

import (
	"shareit/internal/usecase/commands"
)

type CreateUserRequest struct {
	Name  string `json:"name" binding:"required,notblank,max=255"`
	Email string `json:"email" binding:"required,email"`
}

func (r CreateUserRequest) ToCommand() commands.CreateUserRequest {
	return commands.CreateUserRequest{Name: r.Name, Email: r.Email}
}

// PatchUserRequest leaves absent or blank fields unchanged.
type PatchUserRequest struct {
	Name  *string `json:"name" binding:"omitempty,max=255"`
	Email *string `json:"email" binding:"omitempty,email"`
}

func (r PatchUserRequest) ToCommand() commands.PatchUserRequest {
	return commands.PatchUserRequest{Name: r.Name, Email: r.Email}
}
