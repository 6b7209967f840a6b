package unit_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/HasanRzayev/FIRSATTO.PRO/internal/domain"
	"github.com/HasanRzayev/FIRSATTO.PRO/internal/service/inbox"
	"github.com/HasanRzayev/FIRSATTO.PRO/tests/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newInboxService(commentRepo *mocks.CommentRepository, adRepo *mocks.AdRepository) inbox.Service {
	return inbox.NewService(commentRepo, adRepo, nil) // Redis nil
}

func TestInboxService_List_Empty(t *testing.T) {
	commentRepo := new(mocks.CommentRepository)
	adRepo := new(mocks.AdRepository)
	svc := newInboxService(commentRepo, adRepo)

	ctx := context.Background()
	userID := uuid.New()

	commentRepo.On("ListIDsByAuthor", ctx, userID).Return([]uuid.UUID{}, nil).Once()
	adRepo.On("ListIDsByOwner", ctx, userID).Return([]uuid.UUID{}, nil).Once()

	items, err := svc.List(ctx, userID)

	assert.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
	// No source queries when the user owns nothing.
	commentRepo.AssertNotCalled(t, "ListRepliesToComments", mock.Anything, mock.Anything)
	commentRepo.AssertNotCalled(t, "ListTopLevelOnAds", mock.Anything, mock.Anything, mock.Anything)
}

func TestInboxService_List_MergesAndSorts(t *testing.T) {
	commentRepo := new(mocks.CommentRepository)
	adRepo := new(mocks.AdRepository)
	svc := newInboxService(commentRepo, adRepo)

	ctx := context.Background()
	userID := uuid.New()
	myCommentID := uuid.New()
	myAdID := uuid.New()

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	reply := domain.Notification{
		ID:        uuid.New(),
		Kind:      domain.NotifReply,
		Content:   "Still for sale?",
		CreatedAt: base.Add(time.Minute),
	}
	older := domain.Notification{
		ID:        uuid.New(),
		Kind:      domain.NotifAdComment,
		Content:   "Nice bike",
		CreatedAt: base.Add(-time.Hour),
	}
	newest := domain.Notification{
		ID:        uuid.New(),
		Kind:      domain.NotifAdComment,
		Content:   "Is the price negotiable?",
		CreatedAt: base.Add(2 * time.Hour),
	}

	commentRepo.On("ListIDsByAuthor", ctx, userID).Return([]uuid.UUID{myCommentID}, nil).Once()
	adRepo.On("ListIDsByOwner", ctx, userID).Return([]uuid.UUID{myAdID}, nil).Once()
	commentRepo.On("ListRepliesToComments", ctx, []uuid.UUID{myCommentID}).Return([]domain.Notification{reply}, nil).Once()
	commentRepo.On("ListTopLevelOnAds", ctx, []uuid.UUID{myAdID}, userID).Return([]domain.Notification{older, newest}, nil).Once()

	items, err := svc.List(ctx, userID)

	assert.NoError(t, err)
	assert.Len(t, items, 3)
	assert.Equal(t, newest.ID, items[0].ID)
	assert.Equal(t, reply.ID, items[1].ID)
	assert.Equal(t, older.ID, items[2].ID)
	commentRepo.AssertExpectations(t)
	adRepo.AssertExpectations(t)
}

func TestInboxService_List_DeduplicatesByID(t *testing.T) {
	commentRepo := new(mocks.CommentRepository)
	adRepo := new(mocks.AdRepository)
	svc := newInboxService(commentRepo, adRepo)

	ctx := context.Background()
	userID := uuid.New()
	myCommentID := uuid.New()
	myAdID := uuid.New()

	shared := domain.Notification{
		ID:        uuid.New(),
		Content:   "duplicate row",
		CreatedAt: time.Now(),
	}

	commentRepo.On("ListIDsByAuthor", ctx, userID).Return([]uuid.UUID{myCommentID}, nil).Once()
	adRepo.On("ListIDsByOwner", ctx, userID).Return([]uuid.UUID{myAdID}, nil).Once()
	commentRepo.On("ListRepliesToComments", ctx, []uuid.UUID{myCommentID}).Return([]domain.Notification{shared}, nil).Once()
	commentRepo.On("ListTopLevelOnAds", ctx, []uuid.UUID{myAdID}, userID).Return([]domain.Notification{shared}, nil).Once()

	items, err := svc.List(ctx, userID)

	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, shared.ID, items[0].ID)
}

func TestInboxService_List_TieBrokenByIDDescending(t *testing.T) {
	commentRepo := new(mocks.CommentRepository)
	adRepo := new(mocks.AdRepository)
	svc := newInboxService(commentRepo, adRepo)

	ctx := context.Background()
	userID := uuid.New()
	myAdID := uuid.New()

	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	lowID := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	highID := uuid.MustParse("ffffffff-0000-0000-0000-000000000001")

	a := domain.Notification{ID: lowID, CreatedAt: at}
	b := domain.Notification{ID: highID, CreatedAt: at}

	commentRepo.On("ListIDsByAuthor", ctx, userID).Return([]uuid.UUID{}, nil).Once()
	adRepo.On("ListIDsByOwner", ctx, userID).Return([]uuid.UUID{myAdID}, nil).Once()
	commentRepo.On("ListTopLevelOnAds", ctx, []uuid.UUID{myAdID}, userID).Return([]domain.Notification{a, b}, nil).Once()

	items, err := svc.List(ctx, userID)

	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, highID, items[0].ID)
	assert.Equal(t, lowID, items[1].ID)
}

func TestInboxService_List_SourceQueryFailureAbortsCall(t *testing.T) {
	commentRepo := new(mocks.CommentRepository)
	adRepo := new(mocks.AdRepository)
	svc := newInboxService(commentRepo, adRepo)

	ctx := context.Background()
	userID := uuid.New()
	myCommentID := uuid.New()
	myAdID := uuid.New()

	commentRepo.On("ListIDsByAuthor", ctx, userID).Return([]uuid.UUID{myCommentID}, nil).Once()
	adRepo.On("ListIDsByOwner", ctx, userID).Return([]uuid.UUID{myAdID}, nil).Once()
	commentRepo.On("ListRepliesToComments", ctx, []uuid.UUID{myCommentID}).Return(nil, errors.New("connection reset")).Once()

	items, err := svc.List(ctx, userID)

	assert.Error(t, err)
	assert.Nil(t, items)
	// Fail-fast: no partial feed from the second source.
	commentRepo.AssertNotCalled(t, "ListTopLevelOnAds", mock.Anything, mock.Anything, mock.Anything)
}

func TestInboxService_MarkRead(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	id1 := uuid.New()
	id2 := uuid.New()

	t.Run("Empty Set Rejected", func(t *testing.T) {
		commentRepo := new(mocks.CommentRepository)
		adRepo := new(mocks.AdRepository)
		svc := newInboxService(commentRepo, adRepo)

		err := svc.MarkRead(ctx, userID, nil)

		assert.ErrorIs(t, err, inbox.ErrEmptyIDSet)
		commentRepo.AssertNotCalled(t, "MarkRead", mock.Anything, mock.Anything)
	})

	t.Run("Oversized Set Rejected", func(t *testing.T) {
		commentRepo := new(mocks.CommentRepository)
		adRepo := new(mocks.AdRepository)
		svc := newInboxService(commentRepo, adRepo)

		ids := make([]uuid.UUID, inbox.MaxMarkReadBatch+1)
		for i := range ids {
			ids[i] = uuid.New()
		}

		err := svc.MarkRead(ctx, userID, ids)

		assert.ErrorIs(t, err, inbox.ErrTooManyIDs)
	})

	t.Run("Scoped To Caller", func(t *testing.T) {
		commentRepo := new(mocks.CommentRepository)
		adRepo := new(mocks.AdRepository)
		svc := newInboxService(commentRepo, adRepo)

		foreign := uuid.New()
		requested := []uuid.UUID{id1, id2, foreign}

		// Only the caller's own notifications survive the intersection.
		commentRepo.On("FilterNotificationIDsForUser", ctx, userID, requested).Return([]uuid.UUID{id1, id2}, nil).Once()
		commentRepo.On("MarkRead", ctx, []uuid.UUID{id1, id2}).Return(int64(2), nil).Once()

		err := svc.MarkRead(ctx, userID, requested)

		assert.NoError(t, err)
		commentRepo.AssertExpectations(t)
	})

	t.Run("Nothing Owned Is A NoOp", func(t *testing.T) {
		commentRepo := new(mocks.CommentRepository)
		adRepo := new(mocks.AdRepository)
		svc := newInboxService(commentRepo, adRepo)

		requested := []uuid.UUID{uuid.New()}
		commentRepo.On("FilterNotificationIDsForUser", ctx, userID, requested).Return([]uuid.UUID{}, nil).Once()

		err := svc.MarkRead(ctx, userID, requested)

		assert.NoError(t, err)
		commentRepo.AssertNotCalled(t, "MarkRead", mock.Anything, mock.Anything)
	})

	t.Run("Storage Error Propagates", func(t *testing.T) {
		commentRepo := new(mocks.CommentRepository)
		adRepo := new(mocks.AdRepository)
		svc := newInboxService(commentRepo, adRepo)

		requested := []uuid.UUID{id1}
		commentRepo.On("FilterNotificationIDsForUser", ctx, userID, requested).Return([]uuid.UUID{id1}, nil).Once()
		commentRepo.On("MarkRead", ctx, []uuid.UUID{id1}).Return(int64(0), errors.New("write failed")).Once()

		err := svc.MarkRead(ctx, userID, requested)

		assert.Error(t, err)
	})
}

func TestInboxService_UnreadCount(t *testing.T) {
	commentRepo := new(mocks.CommentRepository)
	adRepo := new(mocks.AdRepository)
	svc := newInboxService(commentRepo, adRepo)

	ctx := context.Background()
	userID := uuid.New()
	myAdID := uuid.New()

	items := []domain.Notification{
		{ID: uuid.New(), IsRead: false, CreatedAt: time.Now()},
		{ID: uuid.New(), IsRead: true, CreatedAt: time.Now().Add(-time.Minute)},
		{ID: uuid.New(), IsRead: false, CreatedAt: time.Now().Add(-time.Hour)},
	}

	commentRepo.On("ListIDsByAuthor", ctx, userID).Return([]uuid.UUID{}, nil).Once()
	adRepo.On("ListIDsByOwner", ctx, userID).Return([]uuid.UUID{myAdID}, nil).Once()
	commentRepo.On("ListTopLevelOnAds", ctx, []uuid.UUID{myAdID}, userID).Return(items, nil).Once()

	count, err := svc.UnreadCount(ctx, userID)

	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
