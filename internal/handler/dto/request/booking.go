package request

import (
	"time"

	"shareit/internal/usecase/commands"

	"github.com/google/uuid"
)

// Start and End are RFC 3339 timestamps.
type CreateBookingRequest struct {
	ItemID uuid.UUID `json:"itemId" binding:"required"`
	Start  time.Time `json:"start" binding:"required"`
	End    time.Time `json:"end" binding:"required"`
}

func (r CreateBookingRequest) ToCommand() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{ItemID: r.ItemID, Start: r.Start, End: r.End}
}

type DecideBookingQuery struct {
	Approved *bool `form:"approved" binding:"required"`
}

type ListBookingsQuery struct {
	PageQuery
	State string `form:"state,default=ALL"`
}
