package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"group-reviews/internal/database"
	"group-reviews/internal/domain"

	"github.com/jackc/pgx/v5"
)

const selectGroups = `
	SELECT
		g.id, g.name, g.platform, g.members, g.description,
		COALESCE(g.link, ''), COALESCE(g.avatar, ''),
		COALESCE(g.vk_group_id, ''), COALESCE(g.telegram_channel_id, ''),
		g.created_at,
		COALESCE(AVG(r.rating), 0)::float8 AS rating,
		COUNT(r.id) AS reviews_count
	FROM groups g
	LEFT JOIN reviews r ON g.id = r.group_id`

var groupOrder = map[domain.GroupSort]string{
	domain.SortByRating:  "rating DESC, g.id",
	domain.SortByReviews: "reviews_count DESC, g.id",
	domain.SortByCreated: "g.created_at DESC, g.id DESC",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// GroupRepository реализует взаимодействие с данными групп в PostgreSQL.
type GroupRepository struct {
	db database.PgxIface
}

// NewGroupRepository создает новый экземпляр GroupRepository.
func NewGroupRepository(db database.PgxIface) domain.GroupRepository {
	return &GroupRepository{
		db: db,
	}
}

// List возвращает группы со средней оценкой и числом отзывов с учетом поиска, платформы и сортировки.
func (r *GroupRepository) List(ctx context.Context, filter domain.GroupFilter) ([]*domain.Group, error) {
	order, ok := groupOrder[filter.Sort]
	if !ok {
		order = groupOrder[domain.SortByCreated]
	}

	query := selectGroups + `
	WHERE ($1::text = '' OR LOWER(g.name) LIKE '%' || LOWER($1::text) || '%')
	  AND ($2::text = '' OR g.platform = $2::text)
	GROUP BY g.id
	ORDER BY ` + order

	rows, err := r.db.Query(ctx, query, likeEscaper.Replace(filter.Search), string(filter.Platform))
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	groups := make([]*domain.Group, 0)
	for rows.Next() {
		group, err := scanGroup(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, group)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate groups: %w", err)
	}

	return groups, nil
}

// GetByID возвращает группу по ID.
func (r *GroupRepository) GetByID(ctx context.Context, groupID int64) (*domain.Group, error) {
	query := selectGroups + `
	WHERE g.id = $1
	GROUP BY g.id`

	group, err := scanGroup(r.db.QueryRow(ctx, query, groupID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	return group, nil
}

// Create добавляет группу и возвращает ее ID.
func (r *GroupRepository) Create(ctx context.Context, group *domain.Group) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO groups (name, platform, members, description, link, avatar, vk_group_id, telegram_channel_id)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, ''), NULLIF($8, ''))
		RETURNING id`,
		group.Name, string(group.Platform), group.Members, group.Description,
		group.Link, group.Avatar, group.VKGroupID, group.TelegramChannelID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create group: %w", err)
	}

	return id, nil
}

// Update перезаписывает поля группы.
func (r *GroupRepository) Update(ctx context.Context, group *domain.Group) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE groups
		SET name = $2, platform = $3, members = $4, description = $5,
		    link = NULLIF($6, ''), avatar = NULLIF($7, ''),
		    vk_group_id = NULLIF($8, ''), telegram_channel_id = NULLIF($9, '')
		WHERE id = $1`,
		group.ID, group.Name, string(group.Platform), group.Members, group.Description,
		group.Link, group.Avatar, group.VKGroupID, group.TelegramChannelID,
	)
	if err != nil {
		return fmt.Errorf("failed to update group: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrGroupNotFound
	}

	return nil
}

// Exists проверяет существование группы.
func (r *GroupRepository) Exists(ctx context.Context, groupID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM groups WHERE id = $1)`, groupID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check group existence: %w", err)
	}
	return exists, nil
}

func scanGroup(row pgx.Row) (*domain.Group, error) {
	var (
		group        domain.Group
		platform     string
		reviewsCount int64
	)
	err := row.Scan(
		&group.ID, &group.Name, &platform, &group.Members, &group.Description,
		&group.Link, &group.Avatar, &group.VKGroupID, &group.TelegramChannelID,
		&group.CreatedAt, &group.Rating, &reviewsCount,
	)
	if err != nil {
		return nil, err
	}
	group.Platform = domain.Platform(platform)
	group.ReviewsCount = int(reviewsCount)
	return &group, nil
}
