package page

import (
	"context"
	"errors"

	"group-reviews/internal/domain"
	"group-reviews/internal/rating"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// GroupPage - страница группы: карточка, распределение оценок и отзывы.
type GroupPage struct {
	Group     *GroupCard       `json:"group,omitempty"`
	NotFound  bool             `json:"not_found"`
	Histogram rating.Histogram `json:"histogram"`
	Bars      []rating.Bar     `json:"bars"`
	Reviews   []ReviewCard     `json:"reviews"`
	Form      ReviewForm       `json:"form"`
}

// LoadGroup параллельно загружает группу и ее отзывы.
func (l *Loader) LoadGroup(ctx context.Context, id int64) GroupPage {
	var (
		group   *domain.Group
		reviews []*domain.Review
		g       errgroup.Group
	)
	fields := logrus.Fields{"group_id": id}

	// ошибки не возвращаются в errgroup, чтобы один запрос не отменял другой
	g.Go(func() error {
		found, err := l.api.FindGroup(ctx, id)
		switch {
		case errors.Is(err, domain.ErrGroupNotFound):
		case err != nil:
			l.degrade(err, "group", fields)
		default:
			group = found
		}
		return nil
	})
	g.Go(func() error {
		list, err := l.api.ListReviews(ctx, &id)
		if err != nil {
			l.degrade(err, "reviews", fields)
			return nil
		}
		reviews = list
		return nil
	})
	_ = g.Wait()

	hist, skipped := rating.Aggregate(domain.Ratings(reviews))
	if skipped > 0 {
		l.logger.WithFields(fields).WithField("skipped", skipped).Warn("Reviews with out-of-range rating ignored")
	}

	p := GroupPage{
		NotFound:  group == nil,
		Histogram: hist,
		Bars:      hist.Bars(),
		Reviews:   NewReviewCards(reviews, l.dates),
		Form:      NewReviewForm(id),
	}
	if group != nil {
		card := NewGroupCard(group)
		p.Group = &card
	}
	return p
}

// SubmitReview отправляет форму и перезагружает страницу группы.
// Незаполненная форма отклоняется без обращения к API.
func (l *Loader) SubmitReview(ctx context.Context, form ReviewForm) (GroupPage, error) {
	if err := form.Validate(); err != nil {
		return GroupPage{}, err
	}

	if _, err := l.api.CreateReview(ctx, form.Request()); err != nil {
		l.logger.WithField("group_id", form.GroupID).WithError(err).Error("Failed to add review")
		return GroupPage{}, err
	}

	return l.LoadGroup(ctx, form.GroupID), nil
}
