package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/HasanRzayev/FIRSATTO.PRO/internal/domain"
)

type SavedAdRepository interface {
	Save(ctx context.Context, userID, adID uuid.UUID) error
	Unsave(ctx context.Context, userID, adID uuid.UUID) error
	IsSaved(ctx context.Context, userID, adID uuid.UUID) (bool, error)
	ListByUser(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) ([]domain.SavedAd, int64, error)
}

type savedAdRepository struct {
	db *sqlx.DB
}

func NewSavedAdRepository(db *sqlx.DB) SavedAdRepository {
	return &savedAdRepository{db: db}
}

func (r *savedAdRepository) Save(ctx context.Context, userID, adID uuid.UUID) error {
	query := `
		INSERT INTO user_saved_ads (user_id, ad_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, ad_id) DO NOTHING`
	_, err := r.db.ExecContext(ctx, query, userID, adID)
	return err
}

func (r *savedAdRepository) Unsave(ctx context.Context, userID, adID uuid.UUID) error {
	query := `DELETE FROM user_saved_ads WHERE user_id = $1 AND ad_id = $2`
	_, err := r.db.ExecContext(ctx, query, userID, adID)
	return err
}

func (r *savedAdRepository) IsSaved(ctx context.Context, userID, adID uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM user_saved_ads WHERE user_id = $1 AND ad_id = $2)`
	err := r.db.GetContext(ctx, &exists, query, userID, adID)
	return exists, err
}

func (r *savedAdRepository) ListByUser(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) ([]domain.SavedAd, int64, error) {
	params.Validate()

	var total int64
	countQuery := `
		SELECT COUNT(*)
		FROM user_saved_ads s
		INNER JOIN ads a ON s.ad_id = a.ad_id
		WHERE s.user_id = $1 AND a.deleted_at IS NULL`
	if err := r.db.GetContext(ctx, &total, countQuery, userID); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT
			s.user_id, s.ad_id, s.created_at,
			a.ad_id, a.user_id, a.title, a.description, a.category, a.price, a.location,
			a.image_urls, a.video_urls, a.created_at, a.updated_at,
			u.user_id AS owner_id, u.full_name AS owner_full_name, u.avatar_url AS owner_avatar_url
		FROM user_saved_ads s
		INNER JOIN ads a ON s.ad_id = a.ad_id
		INNER JOIN users u ON a.user_id = u.user_id
		WHERE s.user_id = $1 AND a.deleted_at IS NULL
		ORDER BY s.created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.QueryxContext(ctx, query, userID, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var saved []domain.SavedAd
	for rows.Next() {
		var s domain.SavedAd
		var ad domain.Ad
		var owner domain.AdUser
		err := rows.Scan(
			&s.UserID, &s.AdID, &s.CreatedAt,
			&ad.ID, &ad.UserID, &ad.Title, &ad.Description, &ad.Category, &ad.Price, &ad.Location,
			&ad.ImageURLs, &ad.VideoURLs, &ad.CreatedAt, &ad.UpdatedAt,
			&owner.ID, &owner.FullName, &owner.AvatarURL,
		)
		if err != nil {
			return nil, 0, err
		}
		ad.Owner = &owner
		s.Ad = &ad
		saved = append(saved, s)
	}

	return saved, total, rows.Err()
}
