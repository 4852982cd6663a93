package usecase

import (
	"context"
	"strings"

	"group-reviews/internal/domain"
	"group-reviews/internal/rating"
)

// ReviewUseCase реализует бизнес-логику для работы с отзывами.
type ReviewUseCase struct {
	reviewRepo domain.ReviewRepository
	groupRepo  domain.GroupRepository
	stats      domain.StatsUseCase
}

// NewReviewUseCase создает новый экземпляр ReviewUseCase.
func NewReviewUseCase(reviewRepo domain.ReviewRepository, groupRepo domain.GroupRepository, stats domain.StatsUseCase) domain.ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo: reviewRepo,
		groupRepo:  groupRepo,
		stats:      stats,
	}
}

// ListReviews возвращает отзывы группы или, если группа не указана, последние отзывы по всем группам.
func (uc *ReviewUseCase) ListReviews(ctx context.Context, groupID *int64) ([]*domain.Review, error) {
	if groupID == nil {
		return uc.reviewRepo.ListLatest(ctx, domain.LatestReviewsLimit)
	}
	if *groupID <= 0 {
		return nil, domain.ErrInvalidGroupID
	}

	return uc.reviewRepo.ListByGroup(ctx, *groupID)
}

// CreateReview сохраняет отзыв о существующей группе.
func (uc *ReviewUseCase) CreateReview(ctx context.Context, review *domain.Review) (int64, error) {
	review.UserName = strings.TrimSpace(review.UserName)
	review.Text = strings.TrimSpace(review.Text)

	if review.GroupID <= 0 || review.UserName == "" || review.Rating == 0 || review.Text == "" {
		return 0, domain.ErrMissingReviewFields
	}
	if !rating.Valid(review.Rating) {
		return 0, domain.ErrInvalidRating
	}

	exists, err := uc.groupRepo.Exists(ctx, review.GroupID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, domain.ErrGroupNotFound
	}

	id, err := uc.reviewRepo.Create(ctx, review)
	if err != nil {
		return 0, err
	}
	review.ID = id

	uc.stats.Invalidate(ctx)
	return id, nil
}
