package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/HasanRzayev/FIRSATTO.PRO/internal/domain"
)

type CommentRepository struct {
	mock.Mock
}

func (m *CommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *CommentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *CommentRepository) Update(ctx context.Context, comment *domain.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *CommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *CommentRepository) ListByAd(ctx context.Context, adID uuid.UUID, params domain.PaginationParams) ([]domain.Comment, int64, error) {
	args := m.Called(ctx, adID, params)
	var comments []domain.Comment
	if args.Get(0) != nil {
		comments = args.Get(0).([]domain.Comment)
	}
	return comments, args.Get(1).(int64), args.Error(2)
}

func (m *CommentRepository) ListIDsByAuthor(ctx context.Context, authorID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, authorID)
	var ids []uuid.UUID
	if args.Get(0) != nil {
		ids = args.Get(0).([]uuid.UUID)
	}
	return ids, args.Error(1)
}

func (m *CommentRepository) ListRepliesToComments(ctx context.Context, parentIDs []uuid.UUID) ([]domain.Notification, error) {
	args := m.Called(ctx, parentIDs)
	var items []domain.Notification
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.Notification)
	}
	return items, args.Error(1)
}

func (m *CommentRepository) ListTopLevelOnAds(ctx context.Context, adIDs []uuid.UUID, excludeAuthor uuid.UUID) ([]domain.Notification, error) {
	args := m.Called(ctx, adIDs, excludeAuthor)
	var items []domain.Notification
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.Notification)
	}
	return items, args.Error(1)
}

func (m *CommentRepository) MarkRead(ctx context.Context, ids []uuid.UUID) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *CommentRepository) FilterNotificationIDsForUser(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, userID, ids)
	var owned []uuid.UUID
	if args.Get(0) != nil {
		owned = args.Get(0).([]uuid.UUID)
	}
	return owned, args.Error(1)
}
