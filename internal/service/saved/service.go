package saved

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/HasanRzayev/FIRSATTO.PRO/internal/domain"
	"github.com/HasanRzayev/FIRSATTO.PRO/internal/repository"
)

var ErrAdNotFound = errors.New("ad not found")

type Service interface {
	Save(ctx context.Context, userID, adID uuid.UUID) error
	Unsave(ctx context.Context, userID, adID uuid.UUID) error
	IsSaved(ctx context.Context, userID, adID uuid.UUID) (bool, error)
	List(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.SavedAd], error)
}

type service struct {
	savedRepo repository.SavedAdRepository
	adRepo    repository.AdRepository
}

func NewService(savedRepo repository.SavedAdRepository, adRepo repository.AdRepository) Service {
	return &service{
		savedRepo: savedRepo,
		adRepo:    adRepo,
	}
}

func (s *service) Save(ctx context.Context, userID, adID uuid.UUID) error {
	ad, err := s.adRepo.GetByID(ctx, adID)
	if err != nil {
		return err
	}
	if ad == nil {
		return ErrAdNotFound
	}

	return s.savedRepo.Save(ctx, userID, adID)
}

func (s *service) Unsave(ctx context.Context, userID, adID uuid.UUID) error {
	return s.savedRepo.Unsave(ctx, userID, adID)
}

func (s *service) IsSaved(ctx context.Context, userID, adID uuid.UUID) (bool, error) {
	return s.savedRepo.IsSaved(ctx, userID, adID)
}

func (s *service) List(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.SavedAd], error) {
	saved, total, err := s.savedRepo.ListByUser(ctx, userID, params)
	if err != nil {
		return domain.PaginatedResponse[domain.SavedAd]{}, err
	}

	return domain.NewPaginatedResponse(saved, params.Page, params.PageSize, total), nil
}
