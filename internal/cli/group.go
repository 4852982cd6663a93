package cli

import (
	"fmt"
	"strconv"

	"group-reviews/internal/page"
	"group-reviews/internal/rating"

	"github.com/spf13/cobra"
)

func newGroupCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "group",
		Short: "Show, add or edit a group",
	}

	cmd.AddCommand(
		newGroupShowCommand(a),
		newGroupAddCommand(a),
		newGroupEditCommand(a),
	)
	return cmd
}

func parseGroupID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid group id %q", s)
	}
	return id, nil
}

func newGroupShowCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "show <id>",
		Short:   "Show a group with its rating distribution and reviews",
		Args:    cobra.ExactArgs(1),
		Example: `  groupctl group show 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseGroupID(args[0])
			if err != nil {
				return err
			}
			gp := a.loader.LoadGroup(cmd.Context(), id)
			if a.cfg.Output.JSON {
				return a.printer.JSON(gp)
			}
			a.printGroupPage(gp)
			return nil
		},
	}
}

func (a *app) printGroupPage(gp page.GroupPage) {
	if gp.NotFound {
		a.printer.Muted("Группа не найдена")
		return
	}

	g := gp.Group
	a.printer.Title("%s (%s)", g.Name, g.PlatformName)
	a.printer.Line("%s %s · %d отзывов · %s подписчиков", a.printer.Stars(g.Stars), g.RatingLabel, g.ReviewsCount, g.Members)
	if g.Description != "" {
		a.printer.Line("%s", g.Description)
	}
	if g.Link != "" {
		a.printer.Line("%s", g.Link)
	}
	a.printer.Line("")

	a.printBars(gp.Bars)
	a.printer.Line("")
	a.printReviews(gp.Reviews, false)
}

func (a *app) printBars(bars []rating.Bar) {
	rows := make([][]string, len(bars))
	for i, b := range bars {
		rows[i] = []string{
			strconv.Itoa(b.Stars) + "★",
			PercentBar(b.Percent),
			fmt.Sprintf("%.0f%%", b.Percent),
			strconv.Itoa(b.Count),
		}
	}
	a.printer.Table([]string{"STARS", "", "%", "COUNT"}, rows)
}

type groupFlags struct {
	name        string
	platform    string
	avatar      string
	members     string
	description string
	link        string
	vkGroupID   string
	telegramID  string
}

func (f *groupFlags) register(cmd *cobra.Command, platformDefault string) {
	cmd.Flags().StringVar(&f.name, "name", "", "group name")
	cmd.Flags().StringVar(&f.platform, "platform", platformDefault, "vk or telegram")
	cmd.Flags().StringVar(&f.avatar, "avatar", "", "avatar URL")
	cmd.Flags().StringVar(&f.members, "members", "", "subscriber count, e.g. 81K")
	cmd.Flags().StringVar(&f.description, "description", "", "description")
	cmd.Flags().StringVar(&f.link, "link", "", "link to the group")
	cmd.Flags().StringVar(&f.vkGroupID, "vk-group-id", "", "VK group identifier")
	cmd.Flags().StringVar(&f.telegramID, "telegram-channel-id", "", "Telegram channel identifier")
}

// apply copies only flags the user set, so edit keeps untouched fields.
func (f *groupFlags) apply(cmd *cobra.Command, form *page.GroupForm) {
	set := func(name, value string, dst *string) {
		if cmd.Flags().Changed(name) {
			*dst = value
		}
	}
	set("name", f.name, &form.Name)
	set("platform", f.platform, &form.Platform)
	set("avatar", f.avatar, &form.Avatar)
	set("members", f.members, &form.Members)
	set("description", f.description, &form.Description)
	set("link", f.link, &form.Link)
	set("vk-group-id", f.vkGroupID, &form.VKGroupID)
	set("telegram-channel-id", f.telegramID, &form.TelegramChannelID)
}

func newGroupAddCommand(a *app) *cobra.Command {
	var f groupFlags

	cmd := &cobra.Command{
		Use:     "add",
		Short:   "Create a group",
		Example: `  groupctl group add --name "Котики" --platform vk --members 300K`,
		RunE: func(cmd *cobra.Command, args []string) error {
			form := page.NewGroupForm()
			f.apply(cmd, &form)
			return a.saveGroup(cmd, form)
		},
	}
	f.register(cmd, "vk")
	return cmd
}

func newGroupEditCommand(a *app) *cobra.Command {
	var f groupFlags

	cmd := &cobra.Command{
		Use:     "edit <id>",
		Short:   "Update a group, only the given fields change",
		Args:    cobra.ExactArgs(1),
		Example: `  groupctl group edit 2 --description "Новое описание"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseGroupID(args[0])
			if err != nil {
				return err
			}
			admin := a.loader.LoadAdmin(cmd.Context())
			var form *page.GroupForm
			for i := range admin.Rows {
				if admin.Rows[i].ID == id {
					form = &admin.Rows[i].Form
					break
				}
			}
			if form == nil {
				return fmt.Errorf("group %d not found", id)
			}
			f.apply(cmd, form)
			return a.saveGroup(cmd, *form)
		},
	}
	f.register(cmd, "")
	return cmd
}

func (a *app) saveGroup(cmd *cobra.Command, form page.GroupForm) error {
	id, admin, err := a.loader.SaveGroup(cmd.Context(), form)
	if err != nil {
		return err
	}
	if a.cfg.Output.JSON {
		return a.printer.JSON(map[string]any{"id": id, "groups": admin.Rows})
	}
	if form.GroupID != nil {
		a.printer.Success("Группа %d обновлена", id)
	} else {
		a.printer.Success("Группа %d создана", id)
	}
	return nil
}
