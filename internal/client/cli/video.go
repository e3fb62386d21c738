package cli

import (
	"context"

	"github.com/sachink160/multitool-client/internal/client/services"
)

func cmdVideos(ctx context.Context, a *App, _ []string) error {
	errs := a.video.Refresh(ctx)

	printHeading(a.out, "Uploaded videos")
	rows := [][]string{}
	for _, v := range a.video.Uploads.Items() {
		rows = append(rows, []string{v.Filename})
	}
	printTable(a.out, []string{"Filename"}, rows)

	printHeading(a.out, "Converted files")
	rows = [][]string{}
	for _, f := range a.video.Processed.Items() {
		rows = append(rows, []string{f.Filename, f.Type})
	}
	printTable(a.out, []string{"Filename", "Type"}, rows)

	printSectionErrors(a.out, errs)
	return nil
}

func cmdVideoUpload(ctx context.Context, a *App, args []string) error {
	msg, err := a.video.Upload(ctx, args[0])
	if err != nil {
		return err
	}
	if msg == "" {
		msg = "Video uploaded"
	}
	printSuccess(a.out, "%s", msg)
	return nil
}

// cmdVideoDownload saves a converted file of the logged-in user into the
// download directory.
func cmdVideoDownload(ctx context.Context, a *App, args []string) error {
	u := a.session.User()
	if u == nil {
		return services.ErrNotAuthenticated
	}
	path, err := a.video.Download(ctx, u.ID, args[0], a.config.DownloadDir)
	if err != nil {
		return err
	}
	printSuccess(a.out, "Saved to %s", path)
	return nil
}
