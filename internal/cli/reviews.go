package cli

import (
	"errors"

	"group-reviews/internal/listing"
	"group-reviews/internal/page"

	"github.com/spf13/cobra"
)

var errInvalidGroupFlag = errors.New("--group must be a positive group id")

func latestReviewsState() listing.ViewState {
	return listing.Default().WithTab(listing.TabReviews)
}

func newReviewsCommand(a *app) *cobra.Command {
	var groupID int64

	cmd := &cobra.Command{
		Use:   "reviews",
		Short: "List latest reviews or reviews of one group",
		Example: `  groupctl reviews
  groupctl reviews --group 1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("group") {
				lp := a.loader.LoadListing(cmd.Context(), latestReviewsState())
				if a.cfg.Output.JSON {
					return a.printer.JSON(lp.Reviews)
				}
				a.printReviews(lp.Reviews, true)
				return nil
			}

			if groupID <= 0 {
				return errInvalidGroupFlag
			}
			gp := a.loader.LoadGroup(cmd.Context(), groupID)
			if a.cfg.Output.JSON {
				return a.printer.JSON(gp.Reviews)
			}
			a.printReviews(gp.Reviews, false)
			return nil
		},
	}

	cmd.Flags().Int64VarP(&groupID, "group", "g", 0, "group id")
	return cmd
}

func newReviewCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review",
		Short: "Manage reviews",
	}
	cmd.AddCommand(newReviewAddCommand(a))
	return cmd
}

func newReviewAddCommand(a *app) *cobra.Command {
	var (
		groupID int64
		name    string
		avatar  string
		stars   int
		text    string
	)

	cmd := &cobra.Command{
		Use:     "add",
		Short:   "Add a review to a group",
		Example: `  groupctl review add --group 1 --name "Анна" --rating 5 --text "Отличная группа"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if groupID <= 0 {
				return errInvalidGroupFlag
			}
			form := page.NewReviewForm(groupID)
			form.UserName = name
			form.UserAvatar = avatar
			form.Text = text
			if cmd.Flags().Changed("rating") {
				form.Rating = stars
			}

			gp, err := a.loader.SubmitReview(cmd.Context(), form)
			if err != nil {
				return err
			}
			if a.cfg.Output.JSON {
				return a.printer.JSON(gp)
			}
			a.printer.Success("Отзыв добавлен")
			a.printGroupPage(gp)
			return nil
		},
	}

	cmd.Flags().Int64VarP(&groupID, "group", "g", 0, "group id")
	cmd.Flags().StringVar(&name, "name", "", "your name")
	cmd.Flags().StringVar(&avatar, "avatar", "", "avatar URL")
	cmd.Flags().IntVarP(&stars, "rating", "r", page.DefaultReviewRating, "rating from 1 to 5")
	cmd.Flags().StringVar(&text, "text", "", "review text")
	return cmd
}
