package usecase

import (
	"context"
	"sync"
	"time"

	"group-reviews/internal/domain"
	"group-reviews/internal/metrics"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

const (
	statsFlightKey   = "group_stats"
	statsLoadTimeout = 30 * time.Second
)

// StatsUseCase реализует бизнес-логику для работы со статистикой.
type StatsUseCase struct {
	statsRepo domain.StatsRepository
	cache     domain.StatsCache
	flight    singleflight.Group
	logger    *logrus.Logger

	// mu защищает generation: ее увеличивает каждый Invalidate
	mu         sync.Mutex
	generation uint64
}

// NewStatsUseCase создает новый экземпляр StatsUseCase.
// cache может быть nil, тогда статистика всегда читается из базы.
func NewStatsUseCase(statsRepo domain.StatsRepository, cache domain.StatsCache, logger *logrus.Logger) domain.StatsUseCase {
	return &StatsUseCase{
		statsRepo: statsRepo,
		cache:     cache,
		logger:    logger,
	}
}

// GetGroupStats возвращает статистику оценок по всем группам.
func (uc *StatsUseCase) GetGroupStats(ctx context.Context) ([]*domain.GroupStats, error) {
	if uc.cache != nil {
		stats, ok, err := uc.cache.Get(ctx)
		switch {
		case err != nil:
			metrics.RecordStatsCache(metrics.CacheError)
			uc.logger.WithError(err).Warn("Stats cache read failed")
		case ok:
			metrics.RecordStatsCache(metrics.CacheHit)
			return stats, nil
		default:
			metrics.RecordStatsCache(metrics.CacheMiss)
		}
	}

	// Параллельные промахи кэша сводятся в один запрос к базе.
	// Запрос не зависит от отмены контекста первого вызвавшего.
	v, err, _ := uc.flight.Do(statsFlightKey, func() (interface{}, error) {
		gen := uc.currentGeneration()

		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), statsLoadTimeout)
		defer cancel()

		stats, err := uc.statsRepo.GetGroupStats(loadCtx)
		if err != nil {
			return nil, err
		}
		uc.store(loadCtx, gen, stats)
		return stats, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]*domain.GroupStats), nil
}

// Invalidate сбрасывает закэшированную статистику после изменения групп или отзывов.
// Загрузки, начатые до сброса, больше не попадают в кэш.
func (uc *StatsUseCase) Invalidate(ctx context.Context) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.generation++
	uc.flight.Forget(statsFlightKey)

	if uc.cache == nil {
		return
	}
	if err := uc.cache.Invalidate(ctx); err != nil {
		uc.logger.WithError(err).Warn("Stats cache invalidation failed")
	}
}

func (uc *StatsUseCase) currentGeneration() uint64 {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.generation
}

// store кладет статистику в кэш, только если с начала загрузки не было сброса.
func (uc *StatsUseCase) store(ctx context.Context, gen uint64, stats []*domain.GroupStats) {
	if uc.cache == nil {
		return
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.generation != gen {
		uc.logger.WithField("generation", gen).Debug("Stats changed during load, cache write skipped")
		return
	}
	if err := uc.cache.Set(ctx, stats); err != nil {
		uc.logger.WithError(err).Warn("Stats cache write failed")
	}
}
