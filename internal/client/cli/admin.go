package cli

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/sachink160/multitool-client/internal/client/models"
)

func cmdCRM(ctx context.Context, a *App, _ []string) error {
	m, err := a.crm.Metrics(ctx)
	if err != nil {
		return err
	}

	printHeading(a.out, "Users")
	printFields(a.out,
		field{"Total", fmt.Sprint(m.Users.Total)},
		field{"Admins", fmt.Sprint(m.Users.Admins)},
		field{"Free", fmt.Sprint(m.Users.FreeUsers)},
		field{"Paid", fmt.Sprint(m.Users.PaidUsers)},
		field{"New (7 days)", fmt.Sprint(m.Users.NewLast7Days)},
	)

	printHeading(a.out, "Subscriptions")
	fields := []field{
		{"Active", fmt.Sprint(m.Subscriptions.Active)},
		{"Expiring (7 days)", fmt.Sprint(m.Subscriptions.Expiring7Days)},
		{"Churned (30 days)", fmt.Sprint(m.Subscriptions.Churned30Days)},
	}
	for _, plan := range slices.Sorted(maps.Keys(m.Subscriptions.Plans)) {
		fields = append(fields, field{"Plan " + plan, fmt.Sprint(m.Subscriptions.Plans[plan])})
	}
	printFields(a.out, fields...)

	printHeading(a.out, fmt.Sprintf("Usage %s", m.UsageMonth))
	printFields(a.out,
		field{"Chats", fmt.Sprint(m.Usage.ChatsUsed)},
		field{"Documents", fmt.Sprint(m.Usage.DocumentsUploaded)},
		field{"HR documents", fmt.Sprint(m.Usage.HRDocumentsUploaded)},
		field{"Video uploads", fmt.Sprint(m.Usage.VideoUploads)},
		field{"Prompt documents", fmt.Sprint(m.Usage.DynamicPromptDocumentsUploaded)},
	)

	if m.ContentTotals != nil {
		printHeading(a.out, "Content")
		printFields(a.out,
			field{"Documents", fmt.Sprint(m.ContentTotals.Documents)},
			field{"HR documents", fmt.Sprint(m.ContentTotals.HRDocuments)},
			field{"Prompt documents", fmt.Sprint(m.ContentTotals.DynamicPromptDocuments)},
		)
	}

	printHeading(a.out, "Top users")
	rows := [][]string{}
	for _, u := range m.TopUsers {
		rows = append(rows, []string{u.Username, fmt.Sprint(u.ChatsUsed), fmt.Sprint(u.DocumentsUploaded)})
	}
	printTable(a.out, []string{"User", "Chats", "Documents"}, rows)

	if len(m.DailySignups) > 0 {
		printHeading(a.out, "Daily signups")
		rows = [][]string{}
		for _, d := range m.DailySignups {
			rows = append(rows, []string{d.Date, fmt.Sprint(d.Count)})
		}
		printTable(a.out, []string{"Date", "Signups"}, rows)
	}
	return nil
}

func cmdSettings(ctx context.Context, a *App, args []string) error {
	all := len(args) > 0 && args[0] == "all"
	list, err := a.settings.List(ctx, all)
	if err != nil {
		return err
	}
	printSettings(a, list)
	return nil
}

func cmdSettingCreate(ctx context.Context, a *App, args []string) error {
	list, err := a.settings.Create(ctx, models.MasterSettingCreate{Name: args[0], Value: args[1], IsActive: true})
	if err != nil {
		return err
	}
	printSuccess(a.out, "Setting %s created", args[0])
	printSettings(a, list)
	return nil
}

func cmdSettingUpdate(ctx context.Context, a *App, args []string) error {
	value := args[1]
	list, err := a.settings.Update(ctx, args[0], models.MasterSettingUpdate{Value: &value})
	if err != nil {
		return err
	}
	printSuccess(a.out, "Setting %s updated", args[0])
	printSettings(a, list)
	return nil
}

func cmdSettingDelete(ctx context.Context, a *App, args []string) error {
	list, err := a.settings.Delete(ctx, args[0])
	if err != nil {
		return err
	}
	printSuccess(a.out, "Setting %s deleted", args[0])
	printSettings(a, list)
	return nil
}

func cmdSettingActivate(ctx context.Context, a *App, args []string) error {
	list, err := a.settings.Activate(ctx, args[0])
	if err != nil {
		return err
	}
	printSuccess(a.out, "Setting %s activated", args[0])
	printSettings(a, list)
	return nil
}

// printSettings never shows more than the last characters of a value.
func printSettings(a *App, list []models.MasterSetting) {
	rows := [][]string{}
	for _, s := range list {
		rows = append(rows, []string{s.Name, s.MaskedValue(), yesNo(s.IsActive), s.UpdatedAt})
	}
	printTable(a.out, []string{"Name", "Value", "Active", "Updated"}, rows)
}
