package usecase

import (
	"context"
	"strings"

	"group-reviews/internal/domain"
)

// GroupUseCase реализует бизнес-логику для работы с группами.
type GroupUseCase struct {
	groupRepo domain.GroupRepository
	stats     domain.StatsUseCase
}

// NewGroupUseCase создает новый экземпляр GroupUseCase.
func NewGroupUseCase(groupRepo domain.GroupRepository, stats domain.StatsUseCase) domain.GroupUseCase {
	return &GroupUseCase{
		groupRepo: groupRepo,
		stats:     stats,
	}
}

// ListGroups возвращает группы с учетом поиска, платформы и сортировки.
func (uc *GroupUseCase) ListGroups(ctx context.Context, filter domain.GroupFilter) ([]*domain.Group, error) {
	filter.Search = strings.TrimSpace(filter.Search)

	if filter.Platform != "" && !filter.Platform.Valid() {
		return nil, domain.ErrInvalidPlatform
	}

	switch filter.Sort {
	case "":
		filter.Sort = domain.SortByCreated
	case domain.SortByCreated, domain.SortByRating, domain.SortByReviews:
	default:
		return nil, domain.ErrInvalidSort
	}

	return uc.groupRepo.List(ctx, filter)
}

// CreateGroup добавляет новую группу.
func (uc *GroupUseCase) CreateGroup(ctx context.Context, group *domain.Group) (int64, error) {
	if err := validateGroup(group); err != nil {
		return 0, err
	}

	id, err := uc.groupRepo.Create(ctx, group)
	if err != nil {
		return 0, err
	}
	group.ID = id

	uc.stats.Invalidate(ctx)
	return id, nil
}

// UpdateGroup перезаписывает данные существующей группы.
func (uc *GroupUseCase) UpdateGroup(ctx context.Context, group *domain.Group) error {
	if group.ID <= 0 {
		return domain.ErrInvalidGroupID
	}
	if err := validateGroup(group); err != nil {
		return err
	}

	if err := uc.groupRepo.Update(ctx, group); err != nil {
		return err
	}

	uc.stats.Invalidate(ctx)
	return nil
}

func validateGroup(group *domain.Group) error {
	group.Name = strings.TrimSpace(group.Name)
	if group.Name == "" || group.Platform == "" {
		return domain.ErrMissingGroupFields
	}
	if !group.Platform.Valid() {
		return domain.ErrInvalidPlatform
	}
	return nil
}
