package page

import (
	"context"

	"group-reviews/internal/domain"
	"group-reviews/internal/listing"

	"github.com/sirupsen/logrus"
)

// ListingPage - главная страница: вкладки поиска, топа и отзывов.
type ListingPage struct {
	State   listing.ViewState `json:"state"`
	Groups  []GroupCard       `json:"groups"`
	Reviews []ReviewCard      `json:"reviews"`
}

// LoadListing запрашивает у API группы по состоянию вкладки.
// Вкладка отзывов загружает последние отзывы по всем группам.
func (l *Loader) LoadListing(ctx context.Context, state listing.ViewState) ListingPage {
	p := ListingPage{State: state, Groups: []GroupCard{}, Reviews: []ReviewCard{}}
	fields := logrus.Fields{"tab": state.Tab, "query": state.Query, "platform": state.Platform}

	if state.ShowsReviews() {
		reviews, err := l.api.ListReviews(ctx, nil)
		if err != nil {
			l.degrade(err, "latest reviews", fields)
			return p
		}
		p.Reviews = NewReviewCards(reviews, l.dates)
		return p
	}

	groups, err := l.api.ListGroups(ctx, state.Filter())
	if err != nil {
		l.degrade(err, "groups", fields)
		return p
	}
	p.Groups = NewGroupCards(groups)
	return p
}

// FilterListing применяет состояние к уже загруженным группам без обращения к API.
func FilterListing(groups []*domain.Group, state listing.ViewState) ListingPage {
	return ListingPage{
		State:   state,
		Groups:  NewGroupCards(listing.Apply(groups, state)),
		Reviews: []ReviewCard{},
	}
}

// LoadListingLocal загружает все группы одним запросом и фильтрует их на клиенте.
func (l *Loader) LoadListingLocal(ctx context.Context, state listing.ViewState) ListingPage {
	if state.ShowsReviews() {
		return l.LoadListing(ctx, state)
	}

	groups, err := l.api.ListGroups(ctx, domain.GroupFilter{})
	if err != nil {
		l.degrade(err, "groups", logrus.Fields{"tab": state.Tab, "local": true})
		groups = nil
	}
	return FilterListing(groups, state)
}
