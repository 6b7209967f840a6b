package comment

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/HasanRzayev/FIRSATTO.PRO/internal/domain"
	"github.com/HasanRzayev/FIRSATTO.PRO/internal/repository"
)

var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrAdNotFound      = errors.New("ad not found")
	ErrParentNotFound  = errors.New("parent comment not found")
	ErrParentMismatch  = errors.New("parent comment belongs to a different ad")
	ErrNotAuthor       = errors.New("insufficient permissions for this comment")
	ErrEmptyContent    = errors.New("comment content is required")
)

type Service interface {
	Create(ctx context.Context, adID, userID uuid.UUID, input domain.CreateCommentInput) (*domain.Comment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	Update(ctx context.Context, userID, id uuid.UUID, input domain.UpdateCommentInput) (*domain.Comment, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	ListByAd(ctx context.Context, adID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Comment], error)
}

type service struct {
	commentRepo repository.CommentRepository
	adRepo      repository.AdRepository
}

func NewService(commentRepo repository.CommentRepository, adRepo repository.AdRepository) Service {
	return &service{
		commentRepo: commentRepo,
		adRepo:      adRepo,
	}
}

func (s *service) Create(ctx context.Context, adID, userID uuid.UUID, input domain.CreateCommentInput) (*domain.Comment, error) {
	if input.Content == "" {
		return nil, ErrEmptyContent
	}

	ad, err := s.adRepo.GetByID(ctx, adID)
	if err != nil {
		return nil, err
	}
	if ad == nil {
		return nil, ErrAdNotFound
	}

	if input.ParentID != nil {
		parent, err := s.commentRepo.GetByID(ctx, *input.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, ErrParentNotFound
		}
		if parent.AdID != adID {
			return nil, ErrParentMismatch
		}
	}

	comment := &domain.Comment{
		ID:       uuid.New(),
		AdID:     adID,
		UserID:   userID,
		ParentID: input.ParentID,
		Content:  input.Content,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrCommentNotFound
	}
	return comment, nil
}

func (s *service) Update(ctx context.Context, userID, id uuid.UUID, input domain.UpdateCommentInput) (*domain.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrCommentNotFound
	}

	if comment.UserID != userID {
		return nil, ErrNotAuthor
	}

	comment.Content = input.Content

	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}

	if comment.UserID != userID {
		return ErrNotAuthor
	}

	return s.commentRepo.Delete(ctx, id)
}

func (s *service) ListByAd(ctx context.Context, adID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Comment], error) {
	comments, total, err := s.commentRepo.ListByAd(ctx, adID, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Comment]{}, err
	}

	return domain.NewPaginatedResponse(comments, params.Page, params.PageSize, total), nil
}
