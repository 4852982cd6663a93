package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

func newStatsCommand(a *app) *cobra.Command {
	var detailed bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show rating statistics for every group",
		RunE: func(cmd *cobra.Command, args []string) error {
			sp := a.loader.LoadStats(cmd.Context())
			if a.cfg.Output.JSON {
				return a.printer.JSON(sp)
			}
			if len(sp.Groups) == 0 {
				a.printer.Muted("Статистика недоступна")
				return nil
			}

			if !detailed {
				rows := make([][]string, len(sp.Groups))
				for i, s := range sp.Groups {
					rows[i] = []string{
						strconv.FormatInt(s.ID, 10),
						s.Name,
						s.PlatformName,
						s.MembersCount,
						a.printer.Stars(s.Stars) + " " + s.RatingLabel,
						strconv.Itoa(s.ReviewsCount),
					}
				}
				a.printer.Table([]string{"ID", "NAME", "PLATFORM", "MEMBERS", "AVG", "REVIEWS"}, rows)
				return nil
			}

			for i, s := range sp.Groups {
				if i > 0 {
					a.printer.Line("")
				}
				a.printer.Title("%s (%s)", s.Name, s.PlatformName)
				a.printer.Line("%s %s · %d отзывов", a.printer.Stars(s.Stars), s.RatingLabel, s.ReviewsCount)
				a.printBars(s.Bars)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&detailed, "detailed", "d", false, "print the rating distribution of each group")
	return cmd
}
