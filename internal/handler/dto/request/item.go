package request

import (
	"shareit/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateItemRequest struct {
	Name        string     `json:"name" binding:"required,notblank,max=255"`
	Description string     `json:"description" binding:"required,notblank,max=2000"`
	Available   *bool      `json:"available" binding:"required"`
	RequestID   *uuid.UUID `json:"requestId,omitempty"`
}

func (r CreateItemRequest) ToCommand() commands.CreateItemRequest {
	return commands.CreateItemRequest{
		Name:        r.Name,
		Description: r.Description,
		Available:   r.Available,
		RequestID:   r.RequestID,
	}
}

type PatchItemRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	Available   *bool   `json:"available"`
}

func (r PatchItemRequest) ToCommand() commands.PatchItemRequest {
	return commands.PatchItemRequest{
		Name:        r.Name,
		Description: r.Description,
		Available:   r.Available,
	}
}

type SearchItemsQuery struct {
	PageQuery
	Text string `form:"text"`
}

type CreateCommentRequest struct {
	Text string `json:"text" binding:"required,notblank,max=2000"`
}
