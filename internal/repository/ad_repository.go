package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/HasanRzayev/FIRSATTO.PRO/internal/domain"
)

type AdRepository interface {
	Create(ctx context.Context, ad *domain.Ad) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Ad, error)
	List(ctx context.Context, filter domain.AdFilter, params domain.PaginationParams) ([]domain.Ad, int64, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, params domain.PaginationParams) ([]domain.Ad, int64, error)
	ListIDsByOwner(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error)
	Update(ctx context.Context, ad *domain.Ad) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type adRepository struct {
	db *sqlx.DB
}

func NewAdRepository(db *sqlx.DB) AdRepository {
	return &adRepository{db: db}
}

func (r *adRepository) Create(ctx context.Context, ad *domain.Ad) error {
	query := `
		INSERT INTO ads (ad_id, user_id, title, description, category, price, location, image_urls, video_urls)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		ad.ID, ad.UserID, ad.Title, ad.Description, ad.Category, ad.Price, ad.Location,
		ad.ImageURLs, ad.VideoURLs,
	).Scan(&ad.CreatedAt, &ad.UpdatedAt)
}

func (r *adRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Ad, error) {
	query := `
		SELECT
			a.ad_id, a.user_id, a.title, a.description, a.category, a.price, a.location,
			a.image_urls, a.video_urls, a.created_at, a.updated_at,
			u.user_id AS owner_id, u.full_name AS owner_full_name, u.avatar_url AS owner_avatar_url
		FROM ads a
		INNER JOIN users u ON a.user_id = u.user_id
		WHERE a.ad_id = $1 AND a.deleted_at IS NULL`

	row := r.db.QueryRowxContext(ctx, query, id)

	ad, err := scanAdWithOwner(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return ad, nil
}

func (r *adRepository) List(ctx context.Context, filter domain.AdFilter, params domain.PaginationParams) ([]domain.Ad, int64, error) {
	params.Validate()

	where := []string{"a.deleted_at IS NULL"}
	args := []interface{}{}
	idx := 1

	if filter.Query != "" {
		where = append(where, fmt.Sprintf("(a.title ILIKE $%d OR a.description ILIKE $%d OR a.location ILIKE $%d)", idx, idx, idx))
		args = append(args, "%"+filter.Query+"%")
		idx++
	}
	if filter.Category != "" {
		where = append(where, fmt.Sprintf("a.category = $%d", idx))
		args = append(args, filter.Category)
		idx++
	}
	if filter.Location != "" {
		where = append(where, fmt.Sprintf("a.location ILIKE $%d", idx))
		args = append(args, "%"+filter.Location+"%")
		idx++
	}
	if filter.MinPrice != nil {
		where = append(where, fmt.Sprintf("a.price >= $%d", idx))
		args = append(args, *filter.MinPrice)
		idx++
	}
	if filter.MaxPrice != nil {
		where = append(where, fmt.Sprintf("a.price <= $%d", idx))
		args = append(args, *filter.MaxPrice)
		idx++
	}

	whereClause := strings.Join(where, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM ads a WHERE ` + whereClause
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT
			a.ad_id, a.user_id, a.title, a.description, a.category, a.price, a.location,
			a.image_urls, a.video_urls, a.created_at, a.updated_at,
			u.user_id AS owner_id, u.full_name AS owner_full_name, u.avatar_url AS owner_avatar_url
		FROM ads a
		INNER JOIN users u ON a.user_id = u.user_id
		WHERE %s
		ORDER BY a.created_at DESC
		LIMIT $%d OFFSET $%d`, whereClause, idx, idx+1)

	args = append(args, params.PageSize, params.Offset())

	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var ads []domain.Ad
	for rows.Next() {
		ad, err := scanAdWithOwner(rows)
		if err != nil {
			return nil, 0, err
		}
		ads = append(ads, *ad)
	}

	return ads, total, rows.Err()
}

func (r *adRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, params domain.PaginationParams) ([]domain.Ad, int64, error) {
	params.Validate()

	var total int64
	countQuery := `SELECT COUNT(*) FROM ads WHERE user_id = $1 AND deleted_at IS NULL`
	if err := r.db.GetContext(ctx, &total, countQuery, ownerID); err != nil {
		return nil, 0, err
	}

	var ads []domain.Ad
	query := `
		SELECT ad_id, user_id, title, description, category, price, location,
			image_urls, video_urls, created_at, updated_at
		FROM ads
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	err := r.db.SelectContext(ctx, &ads, query, ownerID, params.PageSize, params.Offset())
	return ads, total, err
}

func (r *adRepository) ListIDsByOwner(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	query := `SELECT ad_id FROM ads WHERE user_id = $1 AND deleted_at IS NULL`
	err := r.db.SelectContext(ctx, &ids, query, ownerID)
	return ids, err
}

func (r *adRepository) Update(ctx context.Context, ad *domain.Ad) error {
	query := `
		UPDATE ads
		SET title = $2, description = $3, category = $4, price = $5, location = $6,
			image_urls = $7, video_urls = $8, updated_at = NOW()
		WHERE ad_id = $1 AND deleted_at IS NULL
		RETURNING updated_at`

	return r.db.QueryRowxContext(ctx, query,
		ad.ID, ad.Title, ad.Description, ad.Category, ad.Price, ad.Location,
		ad.ImageURLs, ad.VideoURLs,
	).Scan(&ad.UpdatedAt)
}

func (r *adRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE ads SET deleted_at = NOW() WHERE ad_id = $1 AND deleted_at IS NULL`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAdWithOwner(row rowScanner) (*domain.Ad, error) {
	var ad domain.Ad
	var owner domain.AdUser

	err := row.Scan(
		&ad.ID, &ad.UserID, &ad.Title, &ad.Description, &ad.Category, &ad.Price, &ad.Location,
		&ad.ImageURLs, &ad.VideoURLs, &ad.CreatedAt, &ad.UpdatedAt,
		&owner.ID, &owner.FullName, &owner.AvatarURL,
	)
	if err != nil {
		return nil, err
	}

	ad.Owner = &owner
	return &ad, nil
}
