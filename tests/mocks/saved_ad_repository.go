package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/HasanRzayev/FIRSATTO.PRO/internal/domain"
)

type SavedAdRepository struct {
	mock.Mock
}

func (m *SavedAdRepository) Save(ctx context.Context, userID, adID uuid.UUID) error {
	args := m.Called(ctx, userID, adID)
	return args.Error(0)
}

func (m *SavedAdRepository) Unsave(ctx context.Context, userID, adID uuid.UUID) error {
	args := m.Called(ctx, userID, adID)
	return args.Error(0)
}

func (m *SavedAdRepository) IsSaved(ctx context.Context, userID, adID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, adID)
	return args.Bool(0), args.Error(1)
}

func (m *SavedAdRepository) ListByUser(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) ([]domain.SavedAd, int64, error) {
	args := m.Called(ctx, userID, params)
	var saved []domain.SavedAd
	if args.Get(0) != nil {
		saved = args.Get(0).([]domain.SavedAd)
	}
	return saved, args.Get(1).(int64), args.Error(2)
}
