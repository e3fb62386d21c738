package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/sachink160/multitool-client/internal/client/models"
)

func cmdImages(ctx context.Context, a *App, _ []string) error {
	errs := a.images.Refresh(ctx)

	rows := [][]string{}
	for _, img := range a.images.History.Items() {
		preview := "-"
		if u, ok := a.images.Preview(img.ID); ok {
			preview = u
		}
		rows = append(rows, []string{
			img.ID,
			img.Prompt,
			fmt.Sprintf("%dx%d", img.Width, img.Height),
			string(img.Status),
			img.CreatedAt,
			preview,
		})
	}
	printTable(a.out, []string{"ID", "Prompt", "Size", "Status", "Created", "Preview"}, rows)
	printImageQuota(a)
	printSectionErrors(a.out, errs)
	return nil
}

func printImageQuota(a *App) {
	fields := []field{{"Images", quotaLine(a.images.Gate())}}
	if info := a.images.Info(); info != nil && info.PlanName != "" {
		fields = append(fields, field{"Plan", info.PlanName})
	}
	printFields(a.out, fields...)
}

// cmdImageGenerate generates an image from the joined arguments with the
// default size and sampling settings.
func cmdImageGenerate(ctx context.Context, a *App, args []string) error {
	if err := a.images.RefreshQuota(ctx); err != nil {
		printWarn(a.out, "Could not refresh image quota: %v", err)
	}

	req := models.DefaultImageRequest(strings.Join(args, " "))
	neg, err := getSimpleText(a.reader, "Negative prompt (optional)", a.out)
	if err != nil {
		return err
	}
	req.NegativePrompt = neg

	rec, err := a.images.Generate(ctx, req)
	if err != nil {
		return err
	}
	printSuccess(a.out, "Image %s created (%s)", rec.ID, rec.Status)
	printImageQuota(a)
	return nil
}

func cmdImageDownload(ctx context.Context, a *App, args []string) error {
	path, err := a.images.Download(ctx, args[0], a.config.DownloadDir)
	if err != nil {
		return err
	}
	printSuccess(a.out, "Saved to %s", path)
	return nil
}

func cmdImageDelete(ctx context.Context, a *App, args []string) error {
	if err := a.images.Delete(ctx, args[0]); err != nil {
		return err
	}
	printSuccess(a.out, "Image %s deleted", args[0])
	return nil
}
