package ad

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/HasanRzayev/FIRSATTO.PRO/internal/domain"
	"github.com/HasanRzayev/FIRSATTO.PRO/internal/repository"
)

var (
	ErrAdNotFound    = errors.New("ad not found")
	ErrNotOwner      = errors.New("insufficient permissions for this ad")
	ErrBadCategory   = errors.New("unknown category")
	ErrPriceRange    = errors.New("min_price cannot exceed max_price")
	ErrEmptyTitle    = errors.New("title is required")
	ErrEmptyLocation = errors.New("location is required")
)

// Categories the browse page filters on. Mirrors the listing form.
var Categories = []string{
	"road", "mountain", "city", "electric", "kids", "bmx", "folding", "parts", "accessories", "other",
}

type Service interface {
	Create(ctx context.Context, userID uuid.UUID, input domain.CreateAdInput) (*domain.Ad, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Ad, error)
	List(ctx context.Context, filter domain.AdFilter, params domain.PaginationParams) (domain.PaginatedResponse[domain.Ad], error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Ad], error)
	Update(ctx context.Context, userID, id uuid.UUID, input domain.UpdateAdInput) (*domain.Ad, error)
	Delete(ctx context.Context, userID, id uuid.UUID, isAdmin bool) error
}

type service struct {
	adRepo repository.AdRepository
	redis  *redis.Client
}

func NewService(adRepo repository.AdRepository, redisClient *redis.Client) Service {
	return &service{
		adRepo: adRepo,
		redis:  redisClient,
	}
}

func validCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, input domain.CreateAdInput) (*domain.Ad, error) {
	if input.Title == "" {
		return nil, ErrEmptyTitle
	}
	if input.Location == "" {
		return nil, ErrEmptyLocation
	}
	if !validCategory(input.Category) {
		return nil, ErrBadCategory
	}

	ad := &domain.Ad{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Price:       input.Price,
		Location:    input.Location,
		ImageURLs:   input.ImageURLs,
		VideoURLs:   input.VideoURLs,
	}

	if err := s.adRepo.Create(ctx, ad); err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx)

	return ad, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Ad, error) {
	ad, err := s.adRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ad == nil {
		return nil, ErrAdNotFound
	}
	return ad, nil
}

func (s *service) List(ctx context.Context, filter domain.AdFilter, params domain.PaginationParams) (domain.PaginatedResponse[domain.Ad], error) {
	if filter.MinPrice != nil && filter.MaxPrice != nil && *filter.MinPrice > *filter.MaxPrice {
		return domain.PaginatedResponse[domain.Ad]{}, ErrPriceRange
	}

	cacheKey := listCacheKey(filter, params)

	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var result domain.PaginatedResponse[domain.Ad]
			if json.Unmarshal([]byte(cached), &result) == nil {
				return result, nil
			}
		}
	}

	ads, total, err := s.adRepo.List(ctx, filter, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Ad]{}, err
	}

	result := domain.NewPaginatedResponse(ads, params.Page, params.PageSize, total)

	if s.redis != nil {
		if resultJSON, err := json.Marshal(result); err == nil {
			_ = s.redis.Set(ctx, cacheKey, resultJSON, 2*time.Minute).Err()
		}
	}

	return result, nil
}

func (s *service) ListByOwner(ctx context.Context, ownerID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Ad], error) {
	ads, total, err := s.adRepo.ListByOwner(ctx, ownerID, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Ad]{}, err
	}

	return domain.NewPaginatedResponse(ads, params.Page, params.PageSize, total), nil
}

func (s *service) Update(ctx context.Context, userID, id uuid.UUID, input domain.UpdateAdInput) (*domain.Ad, error) {
	ad, err := s.adRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ad == nil {
		return nil, ErrAdNotFound
	}
	if ad.UserID != userID {
		return nil, ErrNotOwner
	}

	if input.Title != nil {
		ad.Title = *input.Title
	}
	if input.Description != nil {
		ad.Description = *input.Description
	}
	if input.Category != nil {
		if !validCategory(*input.Category) {
			return nil, ErrBadCategory
		}
		ad.Category = *input.Category
	}
	if input.Price != nil {
		ad.Price = *input.Price
	}
	if input.Location != nil {
		ad.Location = *input.Location
	}
	if input.ImageURLs != nil {
		ad.ImageURLs = *input.ImageURLs
	}
	if input.VideoURLs != nil {
		ad.VideoURLs = *input.VideoURLs
	}

	if err := s.adRepo.Update(ctx, ad); err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx)

	return ad, nil
}

func (s *service) Delete(ctx context.Context, userID, id uuid.UUID, isAdmin bool) error {
	ad, err := s.adRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if ad == nil {
		return ErrAdNotFound
	}
	if ad.UserID != userID && !isAdmin {
		return ErrNotOwner
	}

	if err := s.adRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateListCache(ctx)

	return nil
}

func (s *service) invalidateListCache(ctx context.Context) {
	if s.redis == nil {
		return
	}
	keys, _ := s.redis.Keys(ctx, "ads:list:*").Result()
	if len(keys) > 0 {
		_ = s.redis.Del(ctx, keys...).Err()
	}
}

func listCacheKey(filter domain.AdFilter, params domain.PaginationParams) string {
	minPrice, maxPrice := "", ""
	if filter.MinPrice != nil {
		minPrice = fmt.Sprintf("%.2f", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		maxPrice = fmt.Sprintf("%.2f", *filter.MaxPrice)
	}
	return fmt.Sprintf("ads:list:%s:%s:%s:%s:%s:page:%d:size:%d",
		filter.Query, filter.Category, filter.Location, minPrice, maxPrice, params.Page, params.PageSize)
}
