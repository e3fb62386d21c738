package cli

import (
	"context"
	"slices"
	"strings"

	"github.com/sachink160/multitool-client/internal/client/models"
)

func cmdDocs(ctx context.Context, a *App, _ []string) error {
	if err := a.docs.Refresh(ctx); err != nil {
		return err
	}
	rows := [][]string{}
	for _, d := range a.docs.Documents.Items() {
		rows = append(rows, []string{d.ID, d.Filename, d.UploadDate})
	}
	printTable(a.out, []string{"ID", "Filename", "Uploaded"}, rows)
	return nil
}

func cmdDocUpload(ctx context.Context, a *App, args []string) error {
	doc, err := a.docs.Upload(ctx, args[0])
	if err != nil {
		return err
	}
	if doc != nil {
		printSuccess(a.out, "Uploaded %s (id %s)", doc.Filename, doc.ID)
	} else {
		printSuccess(a.out, "Uploaded %s", args[0])
	}
	return nil
}

// cmdDocAsk takes the document id, an optional query type and the question.
// Only a plain question needs text; the other query types work on their own.
func cmdDocAsk(ctx context.Context, a *App, args []string) error {
	id, rest := args[0], args[1:]

	queryType := models.QueryQuestion
	if len(rest) > 0 && slices.Contains(models.QueryTypes, rest[0]) {
		queryType, rest = rest[0], rest[1:]
	}

	question := strings.Join(rest, " ")
	if question == "" {
		if queryType == models.QueryQuestion {
			q, err := getSimpleText(a.reader, "Your question", a.out)
			if err != nil {
				return err
			}
			question = q
		} else {
			question = strings.ReplaceAll(queryType, "_", " ")
		}
	}

	answer, err := a.docs.Ask(ctx, id, question, queryType)
	if err != nil {
		return err
	}
	printAnswer(a, answer)
	return nil
}

func cmdHR(ctx context.Context, a *App, _ []string) error {
	if err := a.hr.Refresh(ctx); err != nil {
		return err
	}
	rows := [][]string{}
	for _, d := range a.hr.Documents.Items() {
		rows = append(rows, []string{d.ID, d.Filename, d.UploadDate, yesNo(d.IsActive)})
	}
	printTable(a.out, []string{"ID", "Filename", "Uploaded", "Active"}, rows)
	return nil
}

func cmdHRUpload(ctx context.Context, a *App, args []string) error {
	doc, err := a.hr.Upload(ctx, args[0])
	if err != nil {
		return err
	}
	if doc != nil {
		printSuccess(a.out, "Uploaded %s (id %s)", doc.Filename, doc.ID)
	} else {
		printSuccess(a.out, "Uploaded %s", args[0])
	}
	return nil
}

func cmdHRActivate(ctx context.Context, a *App, args []string) error {
	if err := a.hr.SetActive(ctx, args[0], true); err != nil {
		return err
	}
	printSuccess(a.out, "Document %s activated", args[0])
	return nil
}

func cmdHRDeactivate(ctx context.Context, a *App, args []string) error {
	if err := a.hr.SetActive(ctx, args[0], false); err != nil {
		return err
	}
	printSuccess(a.out, "Document %s deactivated", args[0])
	return nil
}

func cmdHRAsk(ctx context.Context, a *App, args []string) error {
	question, err := a.askIfEmpty(strings.Join(args, " "), "Ask about company policies")
	if err != nil {
		return err
	}
	answer, err := a.hr.Ask(ctx, question)
	if err != nil {
		return err
	}
	printAnswer(a, answer)
	return nil
}

func printAnswer(a *App, answer string) {
	printHeading(a.out, "Answer")
	a.println(answer)
}
