package response

import (
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

func FromUserView(v *queries.UserView) (*UserResponse, error) {
	return copyView[UserResponse](v)
}

func FromUserViews(vs []*queries.UserView) ([]*UserResponse, error) {
	return mapAll(vs, FromUserView)
}
