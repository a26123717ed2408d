//go:build unit || e2e

package builder

import (
	"time"

	"shareit/internal/domain/user"
	"shareit/internal/handler/dto/request"
	"shareit/internal/infra/query"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserBuilder struct {
	ID    uuid.UUID
	Name  string
	Email string
	Now   time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:    uuid.New(),
		Name:  "Alice",
		Email: "alice@example.com",
		Now:   time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	return user.NewUser(u.Name, u.Email, u.Now)
}

// BuildStored skips validation and keeps ID, like a row read back from the store.
func (u *UserBuilder) BuildStored() *user.User {
	return user.ReconstructUser(u.ID, u.Name, user.ReconstructEmail(u.Email), u.Now, u.Now)
}

func (u *UserBuilder) BuildInfra() query.Users {
	return query.Users{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: pgtype.Timestamptz{Time: u.Now, Valid: true},
		UpdatedAt: pgtype.Timestamptz{Time: u.Now, Valid: true},
	}
}

func (u *UserBuilder) BuildView() *queries.UserView {
	return &queries.UserView{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.Now,
	}
}

func (u *UserBuilder) BuildRequestDTO() request.CreateUserRequest {
	return request.CreateUserRequest{Name: u.Name, Email: u.Email}
}

// Fluent builder methods
func (u *UserBuilder) WithName(name string) *UserBuilder {
	u.Name = name
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}
