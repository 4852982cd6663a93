package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

func newAdminCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "admin",
		Short: "List groups with their platform identifiers",
		RunE: func(cmd *cobra.Command, args []string) error {
			admin := a.loader.LoadAdmin(cmd.Context())
			if a.cfg.Output.JSON {
				return a.printer.JSON(admin)
			}
			if len(admin.Rows) == 0 {
				a.printer.Muted("Группы не найдены")
				return nil
			}

			rows := make([][]string, len(admin.Rows))
			for i, r := range admin.Rows {
				rows[i] = []string{
					strconv.FormatInt(r.ID, 10),
					r.Name,
					r.PlatformName,
					r.Members,
					r.VKGroupID,
					r.TelegramChannelID,
					r.RatingLabel,
				}
			}
			a.printer.Table([]string{"ID", "NAME", "PLATFORM", "MEMBERS", "VK ID", "TELEGRAM ID", "RATING"}, rows)
			return nil
		},
	}
}
