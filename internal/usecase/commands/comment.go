package commands

import (
	"context"

	"shareit/internal/domain/comment"
	"shareit/internal/domain/item"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/metrics"

	"github.com/google/uuid"
)

type CreateCommentResult struct {
	CommentID uuid.UUID
}

type CommentCommands interface {
	Create(ctx context.Context, itemID, authorID uuid.UUID, text string) (*CreateCommentResult, error)
}

type commentUseCaseImpl struct {
	comments CommentRepository
	bookings BookingRepository
	users    UserRepository
	clock    clock.Clock
	metrics  *metrics.Metrics
}

func NewCommentUseCase(
	comments CommentRepository,
	bookings BookingRepository,
	users UserRepository,
	clk clock.Clock,
	m *metrics.Metrics,
) CommentCommands {
	return &commentUseCaseImpl{
		comments: comments,
		bookings: bookings,
		users:    users,
		clock:    clk,
		metrics:  m,
	}
}

func (uc *commentUseCaseImpl) Create(ctx context.Context, itemID, authorID uuid.UUID, text string) (*CreateCommentResult, error) {
	body, err := comment.NewText(text)
	if err != nil {
		return nil, err
	}
	if err := requireUser(ctx, uc.users, authorID); err != nil {
		return nil, err
	}

	slots, err := uc.bookings.SlotsByBookerAndItem(ctx, authorID, itemID)
	if err != nil {
		return nil, err
	}
	now := uc.clock.Now()
	if err := comment.CheckEligibility(slots, now); err != nil {
		return nil, err
	}

	c := comment.NewComment(itemID, authorID, body, now)
	if err := uc.comments.Create(ctx, c); err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, item.ErrNotFound
		}
		return nil, err
	}
	uc.metrics.CommentsCreated.Inc()

	return &CreateCommentResult{CommentID: c.ID()}, nil
}
