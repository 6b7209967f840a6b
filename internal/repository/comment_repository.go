package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/HasanRzayev/FIRSATTO.PRO/internal/domain"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	Update(ctx context.Context, comment *domain.Comment) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByAd(ctx context.Context, adID uuid.UUID, params domain.PaginationParams) ([]domain.Comment, int64, error)

	ListIDsByAuthor(ctx context.Context, authorID uuid.UUID) ([]uuid.UUID, error)
	ListRepliesToComments(ctx context.Context, parentIDs []uuid.UUID) ([]domain.Notification, error)
	ListTopLevelOnAds(ctx context.Context, adIDs []uuid.UUID, excludeAuthor uuid.UUID) ([]domain.Notification, error)
	MarkRead(ctx context.Context, ids []uuid.UUID) (int64, error)
	FilterNotificationIDsForUser(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error)
}

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	query := `
		INSERT INTO comments (comment_id, ad_id, user_id, parent_id, content)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING is_read, created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		comment.ID, comment.AdID, comment.UserID, comment.ParentID, comment.Content,
	).Scan(&comment.IsRead, &comment.CreatedAt, &comment.UpdatedAt)
}

func (r *commentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	var comment domain.Comment
	query := `SELECT * FROM comments WHERE comment_id = $1 AND deleted_at IS NULL`

	err := r.db.GetContext(ctx, &comment, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) Update(ctx context.Context, comment *domain.Comment) error {
	query := `
		UPDATE comments
		SET content = $2, updated_at = NOW()
		WHERE comment_id = $1 AND deleted_at IS NULL
		RETURNING updated_at`

	return r.db.QueryRowxContext(ctx, query,
		comment.ID, comment.Content,
	).Scan(&comment.UpdatedAt)
}

func (r *commentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE comments SET deleted_at = NOW() WHERE comment_id = $1 AND deleted_at IS NULL`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *commentRepository) ListByAd(ctx context.Context, adID uuid.UUID, params domain.PaginationParams) ([]domain.Comment, int64, error) {
	params.Validate()

	var total int64
	countQuery := `SELECT COUNT(*) FROM comments WHERE ad_id = $1 AND parent_id IS NULL AND deleted_at IS NULL`
	if err := r.db.GetContext(ctx, &total, countQuery, adID); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT
			c.comment_id, c.ad_id, c.user_id, c.parent_id, c.content, c.is_read, c.created_at, c.updated_at,
			u.user_id AS author_id, u.full_name, u.username, u.avatar_url
		FROM comments c
		INNER JOIN users u ON c.user_id = u.user_id
		WHERE c.ad_id = $1 AND c.parent_id IS NULL AND c.deleted_at IS NULL
		ORDER BY c.created_at DESC
		LIMIT $2 OFFSET $3`

	comments, err := r.scanComments(ctx, query, adID, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}

	if len(comments) > 0 {
		parentIDs := make([]uuid.UUID, 0, len(comments))
		for _, c := range comments {
			parentIDs = append(parentIDs, c.ID)
		}

		replyQuery, args, err := sqlx.In(`
			SELECT
				c.comment_id, c.ad_id, c.user_id, c.parent_id, c.content, c.is_read, c.created_at, c.updated_at,
				u.user_id AS author_id, u.full_name, u.username, u.avatar_url
			FROM comments c
			INNER JOIN users u ON c.user_id = u.user_id
			WHERE c.parent_id IN (?) AND c.deleted_at IS NULL
			ORDER BY c.created_at ASC`, parentIDs)
		if err != nil {
			return nil, 0, err
		}

		replies, err := r.scanComments(ctx, r.db.Rebind(replyQuery), args...)
		if err != nil {
			return nil, 0, err
		}

		byParent := make(map[uuid.UUID][]domain.Comment, len(comments))
		for _, reply := range replies {
			byParent[*reply.ParentID] = append(byParent[*reply.ParentID], reply)
		}
		for i := range comments {
			comments[i].Replies = byParent[comments[i].ID]
		}
	}

	return comments, total, nil
}

func (r *commentRepository) scanComments(ctx context.Context, query string, args ...interface{}) ([]domain.Comment, error) {
	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var c domain.Comment
		var user domain.CommentUser
		err := rows.Scan(
			&c.ID, &c.AdID, &c.UserID, &c.ParentID, &c.Content, &c.IsRead, &c.CreatedAt, &c.UpdatedAt,
			&user.ID, &user.FullName, &user.Username, &user.AvatarURL,
		)
		if err != nil {
			return nil, err
		}
		c.User = &user
		comments = append(comments, c)
	}

	return comments, rows.Err()
}

func (r *commentRepository) ListIDsByAuthor(ctx context.Context, authorID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	query := `SELECT comment_id FROM comments WHERE user_id = $1 AND deleted_at IS NULL`
	err := r.db.SelectContext(ctx, &ids, query, authorID)
	return ids, err
}

// ListRepliesToComments returns every reply whose parent is one of the given
// comments, shaped as notifications: the reply author's profile, the ad title
// and the parent comment's author (the user the reply is addressed to) are
// resolved in the same query so callers never touch raw join rows.
func (r *commentRepository) ListRepliesToComments(ctx context.Context, parentIDs []uuid.UUID) ([]domain.Notification, error) {
	if len(parentIDs) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`
		SELECT
			c.comment_id, c.content, c.is_read, c.created_at, c.ad_id,
			a.title AS ad_title, p.user_id AS addressed_to,
			u.user_id AS author_id, u.full_name, u.username, u.avatar_url
		FROM comments c
		INNER JOIN comments p ON c.parent_id = p.comment_id
		INNER JOIN ads a ON c.ad_id = a.ad_id
		INNER JOIN users u ON c.user_id = u.user_id
		WHERE c.parent_id IN (?) AND c.deleted_at IS NULL`, parentIDs)
	if err != nil {
		return nil, err
	}

	return r.scanNotifications(ctx, domain.NotifReply, r.db.Rebind(query), args...)
}

// ListTopLevelOnAds returns top-level comments placed on the given ads,
// excluding those written by excludeAuthor (an owner commenting under their
// own listing is not activity worth notifying them about).
func (r *commentRepository) ListTopLevelOnAds(ctx context.Context, adIDs []uuid.UUID, excludeAuthor uuid.UUID) ([]domain.Notification, error) {
	if len(adIDs) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`
		SELECT
			c.comment_id, c.content, c.is_read, c.created_at, c.ad_id,
			a.title AS ad_title, a.user_id AS addressed_to,
			u.user_id AS author_id, u.full_name, u.username, u.avatar_url
		FROM comments c
		INNER JOIN ads a ON c.ad_id = a.ad_id
		INNER JOIN users u ON c.user_id = u.user_id
		WHERE c.ad_id IN (?) AND c.parent_id IS NULL AND c.user_id <> ? AND c.deleted_at IS NULL`,
		adIDs, excludeAuthor)
	if err != nil {
		return nil, err
	}

	return r.scanNotifications(ctx, domain.NotifAdComment, r.db.Rebind(query), args...)
}

func (r *commentRepository) scanNotifications(ctx context.Context, kind domain.NotificationKind, query string, args ...interface{}) ([]domain.Notification, error) {
	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Notification
	for rows.Next() {
		var n domain.Notification
		err := rows.Scan(
			&n.ID, &n.Content, &n.IsRead, &n.CreatedAt, &n.AdID,
			&n.AdTitle, &n.AddressedToID,
			&n.Author.ID, &n.Author.FullName, &n.Author.Username, &n.Author.AvatarURL,
		)
		if err != nil {
			return nil, err
		}
		n.Kind = kind
		items = append(items, n)
	}

	return items, rows.Err()
}

// MarkRead flips is_read on the given comments. Rows already read are left
// untouched, so repeating the call is a no-op.
func (r *commentRepository) MarkRead(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query, args, err := sqlx.In(`UPDATE comments SET is_read = true WHERE comment_id IN (?) AND is_read = false`, ids)
	if err != nil {
		return 0, err
	}

	result, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

// FilterNotificationIDsForUser intersects the requested ids with the set of
// comments that actually notify the given user: replies to their comments and
// top-level comments on their ads not written by them. Anything outside that
// set is silently dropped, so one user cannot mark another's inbox read.
func (r *commentRepository) FilterNotificationIDsForUser(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`
		SELECT c.comment_id
		FROM comments c
		LEFT JOIN comments p ON c.parent_id = p.comment_id
		LEFT JOIN ads a ON c.ad_id = a.ad_id
		WHERE c.comment_id IN (?) AND c.deleted_at IS NULL
			AND (
				(c.parent_id IS NOT NULL AND p.user_id = ?)
				OR (c.parent_id IS NULL AND a.user_id = ? AND c.user_id <> ?)
			)`, ids, userID, userID, userID)
	if err != nil {
		return nil, err
	}

	var owned []uuid.UUID
	err = r.db.SelectContext(ctx, &owned, r.db.Rebind(query), args...)
	return owned, err
}
