package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/sachink160/multitool-client/internal/client/models"
)

func cmdPrompts(ctx context.Context, a *App, _ []string) error {
	errs := a.prompts.Refresh(ctx)

	rows := [][]string{}
	for _, p := range a.prompts.Prompts.Items() {
		rows = append(rows, []string{p.ID, p.Name, p.GPTModel, yesNo(p.IsActive), p.PromptTemplate})
	}
	printTable(a.out, []string{"ID", "Name", "Model", "Active", "Template"}, rows)
	printFields(a.out, field{"Document uploads", quotaLine(a.prompts.Gate())})
	printSectionErrors(a.out, errs)
	return nil
}

func cmdPromptCreate(ctx context.Context, a *App, args []string) error {
	var req models.DynamicPromptCreate

	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	name, err := a.askIfEmpty(name, "Prompt name")
	if err != nil {
		return err
	}
	req.Name = name

	if req.Description, err = getSimpleText(a.reader, "Description (optional)", a.out); err != nil {
		return err
	}
	prompt := fmt.Sprintf("Prompt template, use %s where the document text goes", models.PromptTextPlaceholder)
	if req.PromptTemplate, err = getMultiline(a.reader, prompt, a.out); err != nil {
		return err
	}
	if req.GPTModel, err = getSimpleText(a.reader, fmt.Sprintf("Model [%s]", models.DefaultGPTModel), a.out); err != nil {
		return err
	}

	p, err := a.prompts.Create(ctx, req)
	if err != nil {
		return err
	}
	printSuccess(a.out, "Prompt %q created (id %s)", p.Name, p.ID)
	return nil
}

// cmdPromptUpdate shows the current prompt and asks for new values; empty
// answers keep the current ones.
func cmdPromptUpdate(ctx context.Context, a *App, args []string) error {
	cur, err := a.prompts.Get(ctx, args[0])
	if err != nil {
		return err
	}
	printFields(a.out,
		field{"Name", cur.Name},
		field{"Description", cur.Description},
		field{"Model", cur.GPTModel},
		field{"Active", yesNo(cur.IsActive)},
		field{"Template", cur.PromptTemplate},
	)

	var upd models.DynamicPromptUpdate
	for _, p := range []struct {
		label string
		dst   **string
	}{
		{"New name (empty to keep)", &upd.Name},
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

	tmpl, err := getMultiline(a.reader, "New template (empty to keep)", a.out)
	if err != nil {
		return err
	}
	if tmpl != "" {
		upd.PromptTemplate = &tmpl
	}

	active, err := getSimpleText(a.reader, "Active? (y/n, empty to keep)", a.out)
	if err != nil {
		return err
	}
	if b, ok := parseYesNo(active); ok {
		upd.IsActive = &b
	}

	p, err := a.prompts.Update(ctx, args[0], upd)
	if err != nil {
		return err
	}
	printSuccess(a.out, "Prompt %q updated", p.Name)
	return nil
}

func cmdPromptDelete(ctx context.Context, a *App, args []string) error {
	if err := a.prompts.Delete(ctx, args[0]); err != nil {
		return err
	}
	printSuccess(a.out, "Prompt %s deleted", args[0])
	return nil
}

func cmdPromptUpload(ctx context.Context, a *App, args []string) error {
	// usage must be known for the quota check
	if errs := a.prompts.Refresh(ctx); errs.Failed("usage") {
		printSectionErrors(a.out, errs)
	}
	res, err := a.prompts.UploadDocument(ctx, args[1], args[0])
	if err != nil {
		return err
	}
	msg := res.Message
	if msg == "" {
		msg = "Document uploaded"
	}
	printSuccess(a.out, "%s (id %s, %s)", msg, res.ProcessedDocumentID, res.Status)
	return nil
}

func cmdProcessed(ctx context.Context, a *App, args []string) error {
	if len(args) > 0 {
		d, err := a.prompts.ProcessedDocument(ctx, args[0])
		if err != nil {
			return err
		}
		fields := []field{
			{"ID", d.ID},
			{"File", d.OriginalFilename},
			{"Type", d.FileType},
			{"Prompt", d.PromptID},
			{"Status", string(d.ProcessingStatus)},
			{"Created", d.CreatedAt},
		}
		if d.ErrorMessage != "" {
			fields = append(fields, field{"Error", d.ErrorMessage})
		}
		printFields(a.out, fields...)
		return nil
	}

	errs := a.prompts.Refresh(ctx)
	prompts := make(map[string]string)
	for _, p := range a.prompts.Prompts.Items() {
		prompts[p.ID] = p.Name
	}
	rows := [][]string{}
	for _, d := range a.prompts.Processed.Items() {
		name := prompts[d.PromptID]
		if name == "" {
			name = d.PromptID
		}
		rows = append(rows, []string{d.ID, d.OriginalFilename, name, string(d.ProcessingStatus), d.CreatedAt})
	}
	printTable(a.out, []string{"ID", "File", "Prompt", "Status", "Created"}, rows)
	printSectionErrors(a.out, errs)
	return nil
}

func cmdProcessedResult(ctx context.Context, a *App, args []string) error {
	if !a.prompts.Processed.Loaded() {
		_ = a.prompts.Processed.Refresh(ctx)
	}
	res, err := a.prompts.Result(ctx, args[0])
	if err != nil {
		return err
	}
	printHeading(a.out, fmt.Sprintf("Result for %s", res.OriginalFilename))
	a.println(formatResult(res.Result))
	return nil
}

// formatResult indents JSON results; a JSON string is printed unquoted.
func formatResult(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}

func parseYesNo(s string) (bool, bool) {
	switch s {
	case "y", "Y", "yes":
		return true, true
	case "n", "N", "no":
		return false, true
	}
	return false, false
}
