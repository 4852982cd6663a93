package repository

import (
	"context"
	"errors"
	"fmt"

	"group-reviews/internal/database"
	"group-reviews/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const fkViolation = "23503"

const selectReviews = `
	SELECT r.id, r.group_id, r.user_name, COALESCE(r.user_avatar, ''), r.rating, r.text, r.created_at,
	       g.name AS group_name
	FROM reviews r
	JOIN groups g ON r.group_id = g.id`

// ReviewRepository реализует взаимодействие с данными отзывов в PostgreSQL.
type ReviewRepository struct {
	db database.PgxIface
}

// NewReviewRepository создает новый экземпляр ReviewRepository.
func NewReviewRepository(db database.PgxIface) domain.ReviewRepository {
	return &ReviewRepository{
		db: db,
	}
}

// ListByGroup возвращает все отзывы группы, новые первыми.
func (r *ReviewRepository) ListByGroup(ctx context.Context, groupID int64) ([]*domain.Review, error) {
	rows, err := r.db.Query(ctx, selectReviews+`
	WHERE r.group_id = $1
	ORDER BY r.created_at DESC, r.id DESC`, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list group reviews: %w", err)
	}

	return collectReviews(rows)
}

// ListLatest возвращает последние отзывы по всем группам.
func (r *ReviewRepository) ListLatest(ctx context.Context, limit int) ([]*domain.Review, error) {
	rows, err := r.db.Query(ctx, selectReviews+`
	ORDER BY r.created_at DESC, r.id DESC
	LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list latest reviews: %w", err)
	}

	return collectReviews(rows)
}

// Create сохраняет отзыв и возвращает его ID.
func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO reviews (group_id, user_name, user_avatar, rating, text)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5)
		RETURNING id`,
		review.GroupID, review.UserName, review.UserAvatar, review.Rating, review.Text,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == fkViolation {
			return 0, domain.ErrGroupNotFound
		}
		return 0, fmt.Errorf("failed to create review: %w", err)
	}

	return id, nil
}

func collectReviews(rows pgx.Rows) ([]*domain.Review, error) {
	defer rows.Close()

	reviews := make([]*domain.Review, 0)
	for rows.Next() {
		var review domain.Review
		if err := rows.Scan(
			&review.ID, &review.GroupID, &review.UserName, &review.UserAvatar,
			&review.Rating, &review.Text, &review.CreatedAt, &review.GroupName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, &review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reviews: %w", err)
	}

	return reviews, nil
}
