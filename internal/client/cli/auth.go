package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/sachink160/multitool-client/internal/client/models"
	"github.com/sachink160/multitool-client/internal/client/services"
	"github.com/sachink160/multitool-client/internal/common"
)

const defaultUserType = "user"

func cmdRegister(ctx context.Context, a *App, _ []string) error {
	var req models.RegisterRequest
	prompts := []struct {
		label string
		dst   *string
	}{
		{"Username", &req.Username},
		{"Full name", &req.Fullname},
		{"Email", &req.Email},
		{"Phone (optional)", &req.Phone},
		{"User type (user, admin) [user]", &req.UserType},
	}
	for _, p := range prompts {
		v, err := getSimpleText(a.reader, p.label, a.out)
		if err != nil {
			return err
		}
		*p.dst = v
	}
	if req.UserType == "" {
		req.UserType = defaultUserType
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	req.Password = string(password)

	msg, err := a.session.Register(ctx, req)
	if err != nil {
		return err
	}
	if msg == "" {
		msg = "Registration successful"
	}
	printSuccess(a.out, "%s. You can now log in.", msg)
	return nil
}

func cmdLogin(ctx context.Context, a *App, args []string) error {
	var username string
	if len(args) > 0 {
		username = args[0]
	}

	if username == "" {
		last := a.lastUsername(ctx)
		prompt := "Enter username"
		if last != "" {
			prompt = fmt.Sprintf("Enter username [%s]", last)
		}
		v, err := getSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return err
		}
		username = v
		if username == "" {
			username = last
		}
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.session.Login(ctx, username, string(password)); err != nil {
		return err
	}
	a.rememberUsername(ctx, username)

	u := a.session.User()
	printSuccess(a.out, "Welcome, %s!", displayName(u))
	return nil
}

func (a *App) lastUsername(ctx context.Context) string {
	if a.meta == nil {
		return ""
	}
	v, _, err := a.meta.Get(ctx, common.LastUsernameKey)
	if err != nil {
		a.logger.Debug(ctx, "failed to read last username", "error", err)
		return ""
	}
	return v
}

func (a *App) rememberUsername(ctx context.Context, username string) {
	if a.meta == nil {
		return
	}
	if err := a.meta.Set(ctx, common.LastUsernameKey, username); err != nil {
		a.logger.Warn(ctx, "failed to remember username", "error", err)
	}
}

func cmdLogout(ctx context.Context, a *App, _ []string) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	printSuccess(a.out, "Logged out")
	return nil
}

func cmdWhoami(ctx context.Context, a *App, _ []string) error {
	u := a.session.User()
	if u == nil {
		return services.ErrNotAuthenticated
	}
	fields := []field{
		{"Username", u.Username},
		{"Name", u.Fullname},
		{"Email", u.Email},
		{"Type", u.UserType},
		{"Subscribed", yesNo(u.IsSubscribed)},
	}

	pair, ok, err := a.api.Tokens().Read(ctx)
	switch {
	case err != nil:
		return err
	case ok:
		exp, err := pair.AccessExpiry()
		switch {
		case errors.Is(err, common.ErrTokenNoExpiry):
			fields = append(fields, field{"Token expires", "never"})
		case err != nil:
			fields = append(fields, field{"Token expires", "unknown"})
		default:
			fields = append(fields, field{"Token expires", exp.Local().Format("2006-01-02 15:04:05")})
		}
	}

	printFields(a.out, fields...)
	return nil
}

func cmdProfile(ctx context.Context, a *App, args []string) error {
	if len(args) > 0 && args[0] == "edit" {
		return editProfile(ctx, a)
	}

	p, err := a.account.Profile(ctx)
	if err != nil {
		return err
	}
	printHeading(a.out, "Profile")
	printFields(a.out,
		field{"Username", p.Username},
		field{"Name", p.Fullname},
		field{"Email", p.Email},
		field{"Phone", p.Phone},
		field{"Type", p.UserType},
		field{"Subscribed", yesNo(p.IsSubscribed)},
		field{"Subscription ends", p.SubscriptionEndDate},
		field{"Member since", p.CreatedAt},
	)
	if p.CurrentUsage != nil {
		fmt.Fprintln(a.out)
		printUsage(a, p.CurrentUsage)
	}
	return nil
}

// editProfile asks for each field; an empty answer keeps the current value.
func editProfile(ctx context.Context, a *App) error {
	var upd models.ProfileUpdate
	prompts := []struct {
		label string
		dst   **string
	}{
		{"Full name (empty to keep)", &upd.Fullname},
		{"Email (empty to keep)", &upd.Email},
		{"Phone (empty to keep)", &upd.Phone},
	}
	for _, p := range prompts {
		v, err := getSimpleText(a.reader, p.label, a.out)
		if err != nil {
			return err
		}
		if v != "" {
			*p.dst = &v
		}
	}

	change, err := getSimpleText(a.reader, "Change password? (y/N)", a.out)
	if err != nil {
		return err
	}
	if change == "y" || change == "Y" {
		pw, err := getPassword(a.out)
		if err != nil {
			return err
		}
		s := string(pw)
		upd.Password = &s
	}

	if upd == (models.ProfileUpdate{}) {
		printWarn(a.out, "Nothing to update")
		return nil
	}

	u, err := a.account.Update(ctx, upd)
	if err != nil {
		return err
	}
	printSuccess(a.out, "Profile updated for %s", u.Username)
	return nil
}

func cmdDashboard(ctx context.Context, a *App, _ []string) error {
	sum := a.dashboard.Load(ctx)

	printHeading(a.out, fmt.Sprintf("Welcome back, %s", displayName(a.session.User())))
	printFields(a.out,
		field{"Documents", countOrDash(sum.Documents, sum.Failed.Failed("documents"))},
		field{"HR documents", countOrDash(sum.HRDocuments, sum.Failed.Failed("hr_documents"))},
		field{"Videos", countOrDash(sum.Videos, sum.Failed.Failed("videos"))},
		field{"Chat messages", countOrDash(sum.ChatMessages, sum.Failed.Failed("chat"))},
	)
	printSectionErrors(a.out, sum.Failed)
	return nil
}

func countOrDash(n int, failed bool) string {
	if failed {
		return "-"
	}
	return fmt.Sprint(n)
}

func displayName(u *models.User) string {
	switch {
	case u == nil:
		return "guest"
	case u.Fullname != "":
		return u.Fullname
	default:
		return u.Username
	}
}
