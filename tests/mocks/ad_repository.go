package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/HasanRzayev/FIRSATTO.PRO/internal/domain"
)

type AdRepository struct {
	mock.Mock
}

func (m *AdRepository) Create(ctx context.Context, ad *domain.Ad) error {
	args := m.Called(ctx, ad)
	return args.Error(0)
}

func (m *AdRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Ad, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ad), args.Error(1)
}

func (m *AdRepository) List(ctx context.Context, filter domain.AdFilter, params domain.PaginationParams) ([]domain.Ad, int64, error) {
	args := m.Called(ctx, filter, params)
	var ads []domain.Ad
	if args.Get(0) != nil {
		ads = args.Get(0).([]domain.Ad)
	}
	return ads, args.Get(1).(int64), args.Error(2)
}

func (m *AdRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, params domain.PaginationParams) ([]domain.Ad, int64, error) {
	args := m.Called(ctx, ownerID, params)
	var ads []domain.Ad
	if args.Get(0) != nil {
		ads = args.Get(0).([]domain.Ad)
	}
	return ads, args.Get(1).(int64), args.Error(2)
}

func (m *AdRepository) ListIDsByOwner(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, ownerID)
	var ids []uuid.UUID
	if args.Get(0) != nil {
		ids = args.Get(0).([]uuid.UUID)
	}
	return ids, args.Error(1)
}

func (m *AdRepository) Update(ctx context.Context, ad *domain.Ad) error {
	args := m.Called(ctx, ad)
	return args.Error(0)
}

func (m *AdRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
