//go:build unit

package user_test

import (
	"strings"
	"testing"
	"time"

	"shareit/internal/domain/user"
	"shareit/internal/pkg/errs"
	"shareit/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("builds a valid user", func(t *testing.T) {
		b := builder.NewUserBuilder()

		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		expected, _ := user.NewUser("Alice", "alice@example.com", b.Now)
		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "alice@example.com", actual.Email().Value())
		assert.Equal(t, b.Now, actual.CreatedAt())
	})

	t.Run("normalizes input", func(t *testing.T) {
		u, err := builder.NewUserBuilder().
			WithName("  Alice  ").
			WithEmail(" Alice@Example.COM ").
			BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "Alice", u.Name())
		assert.Equal(t, "alice@example.com", u.Email().Value())
	})

	t.Run("email", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "valid address",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "empty address",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "malformed address",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "missing at sign",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("name", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "blank name",
				mutate: func(b *builder.UserBuilder) { b.WithName("   ") },
				errIs:  user.ErrEmptyName,
			},
			{
				name:   "name at max length",
				mutate: func(b *builder.UserBuilder) { b.WithName(strings.Repeat("a", user.MaxNameLength)) },
			},
			{
				name:   "name over max length",
				mutate: func(b *builder.UserBuilder) { b.WithName(strings.Repeat("a", user.MaxNameLength+1)) },
				errIs:  user.ErrNameTooLong,
			},
		})
	})
}

func TestUser_Patch(t *testing.T) {
	later := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	ptr := func(s string) *string { return &s }

	t.Run("absent fields keep their value", func(t *testing.T) {
		u := builder.NewUserBuilder().BuildStored()

		require.NoError(t, u.Patch(nil, nil, later))

		assert.Equal(t, "Alice", u.Name())
		assert.Equal(t, "alice@example.com", u.Email().Value())
		assert.Equal(t, later, u.UpdatedAt())
	})

	t.Run("present fields replace", func(t *testing.T) {
		u := builder.NewUserBuilder().BuildStored()

		require.NoError(t, u.Patch(ptr("Carol"), ptr("carol@example.com"), later))

		assert.Equal(t, "Carol", u.Name())
		assert.Equal(t, "carol@example.com", u.Email().Value())
	})

	t.Run("invalid email is rejected", func(t *testing.T) {
		u := builder.NewUserBuilder().BuildStored()

		err := u.Patch(nil, ptr("nope"), later)

		require.ErrorIs(t, err, user.ErrInvalidEmail)
		assert.Equal(t, errs.KindValidation, errs.KindOf(err))
		assert.Equal(t, "alice@example.com", u.Email().Value())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
