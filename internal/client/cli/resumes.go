package cli

import (
	"context"
	"fmt"

	"github.com/sachink160/multitool-client/internal/client/models"
	"github.com/sachink160/multitool-client/internal/client/services"
)

func cmdResumes(ctx context.Context, a *App, _ []string) error {
	if err := a.resumes.Resumes.Refresh(ctx); err != nil {
		return err
	}
	rows := [][]string{}
	for _, r := range a.resumes.Resumes.Items() {
		rows = append(rows, []string{r.ID, r.OriginalFilename, r.FileType, r.CreatedAt})
	}
	printTable(a.out, []string{"ID", "File", "Type", "Uploaded"}, rows)
	return nil
}

func cmdResumeUpload(ctx context.Context, a *App, args []string) error {
	uploaded, err := a.resumes.Upload(ctx, args...)
	for _, r := range uploaded {
		printSuccess(a.out, "Uploaded %s (id %s)", r.OriginalFilename, r.ID)
	}
	return err
}

func cmdRequirements(ctx context.Context, a *App, _ []string) error {
	if err := a.resumes.Requirements.Refresh(ctx); err != nil {
		return err
	}
	rows := [][]string{}
	for _, r := range a.resumes.Requirements.Items() {
		rows = append(rows, []string{r.ID, r.Title, r.GPTModel, yesNo(r.IsActive), r.RequirementJSON})
	}
	printTable(a.out, []string{"ID", "Title", "Model", "Active", "Requirements"}, rows)
	return nil
}

func cmdRequirementCreate(ctx context.Context, a *App, args []string) error {
	var req models.JobRequirementCreate

	title := ""
	if len(args) > 0 {
		title = args[0]
	}
	title, err := a.askIfEmpty(title, "Job title")
	if err != nil {
		return err
	}
	req.Title = title

	if req.Description, err = getSimpleText(a.reader, "Description (optional)", a.out); err != nil {
		return err
	}
	if req.RequirementJSON, err = getMultiline(a.reader, "Requirements as JSON", a.out); err != nil {
		return err
	}
	if req.GPTModel, err = getSimpleText(a.reader, fmt.Sprintf("Model [%s]", models.DefaultGPTModel), a.out); err != nil {
		return err
	}

	r, err := a.resumes.CreateRequirement(ctx, req)
	if err != nil {
		return err
	}
	printSuccess(a.out, "Requirement %q created (id %s)", r.Title, r.ID)
	return nil
}

func cmdRequirementUpdate(ctx context.Context, a *App, args []string) error {
	var upd models.JobRequirementUpdate
	for _, p := range []struct {
		label string
		dst   **string
	}{
		{"New title (empty to keep)", &upd.Title},
		{"New description (empty to keep)", &upd.Description},
		{"New model (empty to keep)", &upd.GPTModel},
	} {
		v, err := getSimpleText(a.reader, p.label, a.out)
		if err != nil {
			return err
		}
		if v != "" {
			*p.dst = &v
		}
	}

	js, err := getMultiline(a.reader, "New requirements JSON (empty to keep)", a.out)
	if err != nil {
		return err
	}
	if js != "" {
		upd.RequirementJSON = &js
	}

	active, err := getSimpleText(a.reader, "Active? (y/n, empty to keep)", a.out)
	if err != nil {
		return err
	}
	if b, ok := parseYesNo(active); ok {
		upd.IsActive = &b
	}

	r, err := a.resumes.UpdateRequirement(ctx, args[0], upd)
	if err != nil {
		return err
	}
	printSuccess(a.out, "Requirement %q updated", r.Title)
	return nil
}

func cmdMatch(ctx context.Context, a *App, args []string) error {
	// names in the result come from the local lists
	printSectionErrors(a.out, a.resumes.Refresh(ctx))

	views, err := a.resumes.Match(ctx, args[0], args[1:])
	if err != nil {
		return err
	}
	printMatches(a, views)
	return nil
}

func cmdMatches(ctx context.Context, a *App, args []string) error {
	requirementID := ""
	if len(args) > 0 {
		requirementID = args[0]
	}
	printSectionErrors(a.out, a.resumes.Refresh(ctx))

	views, err := a.resumes.History(ctx, requirementID)
	if err != nil {
		return err
	}
	printMatches(a, views)
	return nil
}

func printMatches(a *App, views []services.MatchView) {
	rows := [][]string{}
	for _, v := range views {
		resume := v.ResumeName
		if resume == "" {
			resume = v.ResumeID
		}
		req := v.RequirementTitle
		if req == "" {
			req = v.RequirementID
		}
		rows = append(rows, []string{fmt.Sprintf("%.1f", v.Score), resume, req, v.Rationale, v.CreatedAt})
	}
	printTable(a.out, []string{"Score", "Resume", "Requirement", "Rationale", "Created"}, rows)
}
