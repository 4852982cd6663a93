package mocks

import (
	"context"

	"group-reviews/internal/domain"

	"github.com/stretchr/testify/mock"
)

// GroupUseCase - мок domain.GroupUseCase для тестов хендлеров.
type GroupUseCase struct {
	mock.Mock
}

func (m *GroupUseCase) ListGroups(ctx context.Context, filter domain.GroupFilter) ([]*domain.Group, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Group), args.Error(1)
}

func (m *GroupUseCase) CreateGroup(ctx context.Context, group *domain.Group) (int64, error) {
	args := m.Called(ctx, group)
	return args.Get(0).(int64), args.Error(1)
}

func (m *GroupUseCase) UpdateGroup(ctx context.Context, group *domain.Group) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

// ReviewUseCase - мок domain.ReviewUseCase.
type ReviewUseCase struct {
	mock.Mock
}

func (m *ReviewUseCase) ListReviews(ctx context.Context, groupID *int64) ([]*domain.Review, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Review), args.Error(1)
}

func (m *ReviewUseCase) CreateReview(ctx context.Context, review *domain.Review) (int64, error) {
	args := m.Called(ctx, review)
	return args.Get(0).(int64), args.Error(1)
}

// StatsUseCase - мок domain.StatsUseCase.
type StatsUseCase struct {
	mock.Mock
}

func (m *StatsUseCase) GetGroupStats(ctx context.Context) ([]*domain.GroupStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.GroupStats), args.Error(1)
}

func (m *StatsUseCase) Invalidate(ctx context.Context) {
	m.Called(ctx)
}
