package domain

import "context"

// GroupUseCase определяет бизнес-логику для работы с группами.
type GroupUseCase interface {
	ListGroups(ctx context.Context, filter GroupFilter) ([]*Group, error)
	CreateGroup(ctx context.Context, group *Group) (int64, error)
	UpdateGroup(ctx context.Context, group *Group) error
}

// ReviewUseCase определяет бизнес-логику для работы с отзывами.
type ReviewUseCase interface {
	ListReviews(ctx context.Context, groupID *int64) ([]*Review, error)
	CreateReview(ctx context.Context, review *Review) (int64, error)
}

// StatsUseCase определяет бизнес-логику для работы со статистикой.
type StatsUseCase interface {
	GetGroupStats(ctx context.Context) ([]*GroupStats, error)
	Invalidate(ctx context.Context)
}
