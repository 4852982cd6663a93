package mocks

import (
	"context"

	"group-reviews/internal/domain"

	"github.com/stretchr/testify/mock"
)

// GroupRepository - мок domain.GroupRepository.
type GroupRepository struct {
	mock.Mock
}

func (m *GroupRepository) List(ctx context.Context, filter domain.GroupFilter) ([]*domain.Group, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Group), args.Error(1)
}

func (m *GroupRepository) GetByID(ctx context.Context, groupID int64) (*domain.Group, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Group), args.Error(1)
}

func (m *GroupRepository) Create(ctx context.Context, group *domain.Group) (int64, error) {
	args := m.Called(ctx, group)
	return args.Get(0).(int64), args.Error(1)
}

func (m *GroupRepository) Update(ctx context.Context, group *domain.Group) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

func (m *GroupRepository) Exists(ctx context.Context, groupID int64) (bool, error) {
	args := m.Called(ctx, groupID)
	return args.Bool(0), args.Error(1)
}

// ReviewRepository - мок domain.ReviewRepository.
type ReviewRepository struct {
	mock.Mock
}

func (m *ReviewRepository) ListByGroup(ctx context.Context, groupID int64) ([]*domain.Review, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Review), args.Error(1)
}

func (m *ReviewRepository) ListLatest(ctx context.Context, limit int) ([]*domain.Review, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Review), args.Error(1)
}

func (m *ReviewRepository) Create(ctx context.Context, review *domain.Review) (int64, error) {
	args := m.Called(ctx, review)
	return args.Get(0).(int64), args.Error(1)
}

// StatsRepository - мок domain.StatsRepository.
type StatsRepository struct {
	mock.Mock
}

func (m *StatsRepository) GetGroupStats(ctx context.Context) ([]*domain.GroupStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.GroupStats), args.Error(1)
}

// StatsCache - мок domain.StatsCache.
type StatsCache struct {
	mock.Mock
}

func (m *StatsCache) Get(ctx context.Context) ([]*domain.GroupStats, bool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]*domain.GroupStats), args.Bool(1), args.Error(2)
}

func (m *StatsCache) Set(ctx context.Context, stats []*domain.GroupStats) error {
	args := m.Called(ctx, stats)
	return args.Error(0)
}

func (m *StatsCache) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
