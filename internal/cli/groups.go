package cli

import (
	"strconv"

	"group-reviews/internal/listing"
	"group-reviews/internal/page"

	"github.com/spf13/cobra"
)

func newGroupsCommand(a *app) *cobra.Command {
	var (
		search   string
		platform string
		tab      string
		local    bool
	)

	cmd := &cobra.Command{
		Use:   "groups",
		Short: "List groups",
		Long: `List groups for a listing tab.

The home and search tabs sort by creation date, the top tab by rating and
the reviews tab prints the latest reviews across all groups. With --local
all groups are fetched once and filtered on the client.`,
		Example: `  groupctl groups --search котики --platform vk
  groupctl groups --tab top
  groupctl groups --tab reviews`,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := listing.ParseTab(tab)
			if err != nil {
				return err
			}
			p, err := listing.ParsePlatform(platform)
			if err != nil {
				return err
			}
			state := listing.Default().WithTab(t).WithQuery(search).WithPlatform(p)

			var lp page.ListingPage
			if local {
				lp = a.loader.LoadListingLocal(cmd.Context(), state)
			} else {
				lp = a.loader.LoadListing(cmd.Context(), state)
			}

			if a.cfg.Output.JSON {
				return a.printer.JSON(lp)
			}
			if state.ShowsReviews() {
				a.printReviews(lp.Reviews, true)
				return nil
			}
			a.printGroups(lp.Groups)
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "search by name")
	cmd.Flags().StringVarP(&platform, "platform", "p", "all", "platform filter: all, vk or telegram")
	cmd.Flags().StringVarP(&tab, "tab", "t", "home", "listing tab: home, search, top or reviews")
	cmd.Flags().BoolVar(&local, "local", false, "filter on the client instead of the server")

	return cmd
}

func (a *app) printGroups(cards []page.GroupCard) {
	if len(cards) == 0 {
		a.printer.Muted("Группы не найдены")
		return
	}

	rows := make([][]string, len(cards))
	for i, c := range cards {
		rows[i] = []string{
			strconv.FormatInt(c.ID, 10),
			c.Name,
			c.PlatformName,
			c.Members,
			a.printer.Stars(c.Stars) + " " + c.RatingLabel,
			strconv.Itoa(c.ReviewsCount),
		}
	}
	a.printer.Table([]string{"ID", "NAME", "PLATFORM", "MEMBERS", "RATING", "REVIEWS"}, rows)
}

func (a *app) printReviews(cards []page.ReviewCard, withGroup bool) {
	if len(cards) == 0 {
		a.printer.Muted("Отзывов пока нет")
		return
	}

	headers := []string{"RATING", "AUTHOR", "WHEN", "TEXT"}
	if withGroup {
		headers = append([]string{"GROUP"}, headers...)
	}
	rows := make([][]string, len(cards))
	for i, c := range cards {
		row := []string{a.printer.Stars(c.Stars), c.UserName, c.When, c.Text}
		if withGroup {
			row = append([]string{c.GroupName}, row...)
		}
		rows[i] = row
	}
	a.printer.Table(headers, rows)
}
