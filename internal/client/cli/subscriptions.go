package cli

import (
	"context"
	"fmt"

	"github.com/sachink160/multitool-client/internal/client/models"
	"github.com/sachink160/multitool-client/internal/client/quota"
)

func cmdPlans(ctx context.Context, a *App, _ []string) error {
	errs := a.subs.Refresh(ctx)

	current := ""
	if cur := a.subs.Current(); cur != nil {
		current = cur.PlanName
	}
	rows := [][]string{}
	for _, p := range a.subs.Plans.Items() {
		name := p.Name
		if name == current {
			name += " (current)"
		}
		rows = append(rows, []string{
			p.ID,
			name,
			fmt.Sprintf("%.2f", p.Price),
			fmt.Sprintf("%d days", p.DurationDays),
			fmt.Sprint(p.MaxChatsPerMonth),
			fmt.Sprint(p.MaxDocuments),
			fmt.Sprint(p.MaxHRDocuments),
			fmt.Sprint(p.MaxVideoUploads),
		})
	}
	printTable(a.out, []string{"ID", "Plan", "Price", "Duration", "Chats", "Docs", "HR docs", "Videos"}, rows)
	printSectionErrors(a.out, errs)
	return nil
}

func cmdSubscribe(ctx context.Context, a *App, args []string) error {
	res, err := a.subs.Subscribe(ctx, args[0])
	if err != nil {
		return err
	}
	msg := res.Message
	if msg == "" {
		msg = "Subscribed"
	}
	printSuccess(a.out, "%s: %s until %s", msg, res.PlanName, res.EndDate)
	return nil
}

func cmdCancelSubscription(ctx context.Context, a *App, _ []string) error {
	msg, err := a.subs.Cancel(ctx)
	if err != nil {
		return err
	}
	if msg == "" {
		msg = "Subscription cancelled"
	}
	printSuccess(a.out, "%s", msg)
	return nil
}

func cmdSubscription(ctx context.Context, a *App, args []string) error {
	if len(args) > 0 && args[0] == "history" {
		subs, err := a.subs.History(ctx)
		if err != nil {
			return err
		}
		rows := [][]string{}
		for _, s := range subs {
			rows = append(rows, []string{s.PlanName, s.Status, s.PaymentStatus, s.StartDate, s.EndDate})
		}
		printTable(a.out, []string{"Plan", "Status", "Payment", "Start", "End"}, rows)
		return nil
	}

	printSectionErrors(a.out, a.subs.Refresh(ctx))
	cur := a.subs.Current()
	if cur == nil {
		printWarn(a.out, "No active subscription")
		return nil
	}
	printFields(a.out,
		field{"Plan", cur.PlanName},
		field{"Status", cur.Status},
		field{"Payment", cur.PaymentStatus},
		field{"Start", cur.StartDate},
		field{"End", cur.EndDate},
		field{"Features", cur.Features},
	)
	return nil
}

func cmdUsage(ctx context.Context, a *App, _ []string) error {
	errs := a.subs.Refresh(ctx)
	if u := a.subs.Usage(); u != nil {
		printUsage(a, u)
	}
	printSectionErrors(a.out, errs)
	return nil
}

func printUsage(a *App, u *models.UsageInfo) {
	printHeading(a.out, fmt.Sprintf("Usage for %s", u.MonthYear))
	printFields(a.out,
		field{"Chats", quotaLine(quota.FromUsage(u, quota.FeatureChats))},
		field{"Documents", quotaLine(quota.FromUsage(u, quota.FeatureDocuments))},
		field{"HR documents", quotaLine(quota.FromUsage(u, quota.FeatureHRDocuments))},
		field{"Video uploads", quotaLine(quota.FromUsage(u, quota.FeatureVideos))},
		field{"Prompt documents", quotaLine(quota.FromUsage(u, quota.FeaturePromptDocuments))},
	)
}
