package inbox

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/HasanRzayev/FIRSATTO.PRO/internal/domain"
	"github.com/HasanRzayev/FIRSATTO.PRO/internal/repository"
)

var (
	ErrEmptyIDSet   = errors.New("ids must not be empty")
	ErrTooManyIDs   = errors.New("too many ids in one request")
	ErrFetchReplies = errors.New("failed to load replies")
)

// MaxMarkReadBatch bounds a single mark-read request.
const MaxMarkReadBatch = 500

const unreadCountTTL = 30 * time.Second

// Service aggregates comment activity into a per-user inbox. A notification
// is either a reply to one of the user's comments or a top-level comment
// left on one of their ads by someone else. The feed is derived on every
// read; the only state this service ever writes is the is_read flag, and
// that flag moves in one direction only.
type Service interface {
	List(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error)
	MarkRead(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) error
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
}

type service struct {
	commentRepo repository.CommentRepository
	adRepo      repository.AdRepository
	redis       *redis.Client
}

func NewService(commentRepo repository.CommentRepository, adRepo repository.AdRepository, redisClient *redis.Client) Service {
	return &service{
		commentRepo: commentRepo,
		adRepo:      adRepo,
		redis:       redisClient,
	}
}

// List builds the feed for userID, newest first. Reading the feed never
// touches read state; clients mark items read with a separate MarkRead call.
// Any failed source query aborts the whole aggregation.
func (s *service) List(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error) {
	ownedCommentIDs, err := s.commentRepo.ListIDsByAuthor(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load own comments: %w", err)
	}

	ownedAdIDs, err := s.adRepo.ListIDsByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load own ads: %w", err)
	}

	if len(ownedCommentIDs) == 0 && len(ownedAdIDs) == 0 {
		return []domain.Notification{}, nil
	}

	var replies []domain.Notification
	if len(ownedCommentIDs) > 0 {
		replies, err = s.commentRepo.ListRepliesToComments(ctx, ownedCommentIDs)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFetchReplies, err)
		}
	}

	var adComments []domain.Notification
	if len(ownedAdIDs) > 0 {
		adComments, err = s.commentRepo.ListTopLevelOnAds(ctx, ownedAdIDs, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to load comments on ads: %w", err)
		}
	}

	items := mergeNotifications(replies, adComments)
	sortNotifications(items)

	return items, nil
}

// mergeNotifications unions the two sources, dropping duplicate ids. Replies
// are never top-level so the sets are disjoint by construction, but the rows
// come from two separate queries and the union is cheap to guard.
func mergeNotifications(sets ...[]domain.Notification) []domain.Notification {
	seen := make(map[uuid.UUID]struct{})
	merged := make([]domain.Notification, 0)

	for _, set := range sets {
		for _, n := range set {
			if _, ok := seen[n.ID]; ok {
				continue
			}
			seen[n.ID] = struct{}{}
			merged = append(merged, n)
		}
	}

	return merged
}

// sortNotifications orders newest first; equal timestamps fall back to id
// descending so repeated calls return the same order.
func sortNotifications(items []domain.Notification) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return bytes.Compare(items[i].ID[:], items[j].ID[:]) > 0
		}
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
}

// MarkRead flips is_read on the requested notifications. The id set is
// intersected with the caller's own notification set first, so ids pointing
// at someone else's inbox are dropped rather than applied. Already-read ids
// and ids that do not survive the intersection make the call a no-op, never
// an error.
func (s *service) MarkRead(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return ErrEmptyIDSet
	}
	if len(ids) > MaxMarkReadBatch {
		return ErrTooManyIDs
	}

	owned, err := s.commentRepo.FilterNotificationIDsForUser(ctx, userID, ids)
	if err != nil {
		return fmt.Errorf("failed to scope ids to caller: %w", err)
	}
	if len(owned) == 0 {
		return nil
	}

	if _, err := s.commentRepo.MarkRead(ctx, owned); err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}

	s.invalidateUnreadCount(ctx, userID)

	return nil
}

// UnreadCount derives the badge number from the same aggregation the inbox
// page renders, so the two can never disagree. The count is cached briefly;
// MarkRead drops the cache.
func (s *service) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	cacheKey := unreadCountKey(userID)

	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			if count, err := strconv.ParseInt(cached, 10, 64); err == nil {
				return count, nil
			}
		}
	}

	items, err := s.List(ctx, userID)
	if err != nil {
		return 0, err
	}

	var count int64
	for _, n := range items {
		if !n.IsRead {
			count++
		}
	}

	if s.redis != nil {
		_ = s.redis.Set(ctx, cacheKey, strconv.FormatInt(count, 10), unreadCountTTL).Err()
	}

	return count, nil
}

func (s *service) invalidateUnreadCount(ctx context.Context, userID uuid.UUID) {
	if s.redis == nil {
		return
	}
	_ = s.redis.Del(ctx, unreadCountKey(userID)).Err()
}

func unreadCountKey(userID uuid.UUID) string {
	return fmt.Sprintf("inbox:unread:%s", userID)
}
