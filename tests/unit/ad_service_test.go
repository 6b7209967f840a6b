package unit_test

import (
	"context"
	"testing"

	"github.com/HasanRzayev/FIRSATTO.PRO/internal/domain"
	"github.com/HasanRzayev/FIRSATTO.PRO/internal/service/ad"
	"github.com/HasanRzayev/FIRSATTO.PRO/tests/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAdService_Create(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	valid := domain.CreateAdInput{
		Title:    "Trek Domane SL6",
		Category: "road",
		Price:    1850,
		Location: "Baku",
	}

	t.Run("Success", func(t *testing.T) {
		adRepo := new(mocks.AdRepository)
		svc := ad.NewService(adRepo, nil)

		adRepo.On("Create", ctx, mock.MatchedBy(func(a *domain.Ad) bool {
			return a.UserID == userID && a.Title == valid.Title && a.ID != uuid.Nil
		})).Return(nil).Once()

		created, err := svc.Create(ctx, userID, valid)

		assert.NoError(t, err)
		assert.Equal(t, "road", created.Category)
		adRepo.AssertExpectations(t)
	})

	t.Run("Validation", func(t *testing.T) {
		adRepo := new(mocks.AdRepository)
		svc := ad.NewService(adRepo, nil)

		cases := []struct {
			name  string
			input domain.CreateAdInput
			want  error
		}{
			{"missing title", domain.CreateAdInput{Category: "road", Location: "Baku"}, ad.ErrEmptyTitle},
			{"missing location", domain.CreateAdInput{Title: "x", Category: "road"}, ad.ErrEmptyLocation},
			{"unknown category", domain.CreateAdInput{Title: "x", Category: "boat", Location: "Baku"}, ad.ErrBadCategory},
		}

		for _, tc := range cases {
			_, err := svc.Create(ctx, userID, tc.input)
			assert.ErrorIs(t, err, tc.want, tc.name)
		}
		adRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestAdService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Passes Filter Through", func(t *testing.T) {
		adRepo := new(mocks.AdRepository)
		svc := ad.NewService(adRepo, nil)

		minPrice := 100.0
		filter := domain.AdFilter{Query: "trek", Category: "road", MinPrice: &minPrice}
		params := domain.DefaultPagination()

		adRepo.On("List", ctx, filter, params).Return([]domain.Ad{{ID: uuid.New(), Title: "Trek"}}, int64(1), nil).Once()

		result, err := svc.List(ctx, filter, params)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), result.TotalItems)
		assert.Len(t, result.Data, 1)
		adRepo.AssertExpectations(t)
	})

	t.Run("Inverted Price Range", func(t *testing.T) {
		adRepo := new(mocks.AdRepository)
		svc := ad.NewService(adRepo, nil)

		minPrice, maxPrice := 500.0, 100.0
		_, err := svc.List(ctx, domain.AdFilter{MinPrice: &minPrice, MaxPrice: &maxPrice}, domain.DefaultPagination())

		assert.ErrorIs(t, err, ad.ErrPriceRange)
		adRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAdService_Delete(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	adID := uuid.New()

	t.Run("Owner Can Delete", func(t *testing.T) {
		adRepo := new(mocks.AdRepository)
		svc := ad.NewService(adRepo, nil)

		adRepo.On("GetByID", ctx, adID).Return(&domain.Ad{ID: adID, UserID: ownerID}, nil).Once()
		adRepo.On("Delete", ctx, adID).Return(nil).Once()

		assert.NoError(t, svc.Delete(ctx, ownerID, adID, false))
	})

	t.Run("Stranger Cannot Delete", func(t *testing.T) {
		adRepo := new(mocks.AdRepository)
		svc := ad.NewService(adRepo, nil)

		adRepo.On("GetByID", ctx, adID).Return(&domain.Ad{ID: adID, UserID: ownerID}, nil).Once()

		err := svc.Delete(ctx, uuid.New(), adID, false)

		assert.ErrorIs(t, err, ad.ErrNotOwner)
		adRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Admin Override", func(t *testing.T) {
		adRepo := new(mocks.AdRepository)
		svc := ad.NewService(adRepo, nil)

		adRepo.On("GetByID", ctx, adID).Return(&domain.Ad{ID: adID, UserID: ownerID}, nil).Once()
		adRepo.On("Delete", ctx, adID).Return(nil).Once()

		assert.NoError(t, svc.Delete(ctx, uuid.New(), adID, true))
	})
}

func TestAdService_Update_OwnershipAndMerge(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	adID := uuid.New()

	adRepo := new(mocks.AdRepository)
	svc := ad.NewService(adRepo, nil)

	existing := &domain.Ad{ID: adID, UserID: ownerID, Title: "old", Category: "road", Price: 100, Location: "Baku"}
	adRepo.On("GetByID", ctx, adID).Return(existing, nil).Once()
	adRepo.On("Update", ctx, mock.MatchedBy(func(a *domain.Ad) bool {
		return a.Title == "new title" && a.Price == 250 && a.Location == "Baku"
	})).Return(nil).Once()

	newTitle := "new title"
	newPrice := 250.0
	updated, err := svc.Update(ctx, ownerID, adID, domain.UpdateAdInput{Title: &newTitle, Price: &newPrice})

	assert.NoError(t, err)
	assert.Equal(t, "new title", updated.Title)
	assert.Equal(t, "road", updated.Category)
	adRepo.AssertExpectations(t)
}
