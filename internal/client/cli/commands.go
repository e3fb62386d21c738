package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/sachink160/multitool-client/internal/client/services"
)

// command is one entry of the command table shared by the REPL and the
// one-shot mode.
type command struct {
	name    string
	args    string
	summary string
	public  bool // runs without a logged-in user
	minArgs int
	run     func(ctx context.Context, a *App, args []string) error
}

func (c command) usage() string {
	if c.args == "" {
		return c.name
	}
	return c.name + " " + c.args
}

// commandTable is filled in init because the help command reads it.
var commandTable []command

func init() {
	commandTable = []command{
		{name: "help", summary: "show available commands", public: true, run: cmdHelp},
		{name: "register", summary: "create an account", public: true, run: cmdRegister},
		{name: "login", args: "[username]", summary: "log in", public: true, run: cmdLogin},
		{name: "logout", summary: "log out", run: cmdLogout},
		{name: "whoami", summary: "show the current user and token expiry", run: cmdWhoami},
		{name: "profile", args: "[edit]", summary: "show or edit your profile", run: cmdProfile},
		{name: "dashboard", summary: "summary of your content", run: cmdDashboard},

		{name: "docs", summary: "list uploaded documents", run: cmdDocs},
		{name: "doc-upload", args: "<file>", summary: "upload a document", minArgs: 1, run: cmdDocUpload},
		{name: "doc-ask", args: "<document-id> [question|summarize|action_items|legal_issues] [text...]", summary: "ask about a document", minArgs: 1, run: cmdDocAsk},
		{name: "hr", summary: "list HR documents", run: cmdHR},
		{name: "hr-upload", args: "<file>", summary: "upload an HR document", minArgs: 1, run: cmdHRUpload},
		{name: "hr-activate", args: "<id>", summary: "activate an HR document", minArgs: 1, run: cmdHRActivate},
		{name: "hr-deactivate", args: "<id>", summary: "deactivate an HR document", minArgs: 1, run: cmdHRDeactivate},
		{name: "hr-ask", args: "[question...]", summary: "ask the HR assistant", run: cmdHRAsk},

		{name: "chat", args: "[message...]", summary: "talk to the chatbot", run: cmdChat},
		{name: "chat-history", summary: "show the conversation", run: cmdChatHistory},

		{name: "videos", summary: "list uploaded videos and converted files", run: cmdVideos},
		{name: "video-upload", args: "<file>", summary: "upload a video for conversion", minArgs: 1, run: cmdVideoUpload},
		{name: "video-download", args: "<filename>", summary: "download a converted file", minArgs: 1, run: cmdVideoDownload},

		{name: "prompts", summary: "list prompt templates", run: cmdPrompts},
		{name: "prompt-create", args: "[name]", summary: "create a prompt template", run: cmdPromptCreate},
		{name: "prompt-update", args: "<id>", summary: "edit a prompt template", minArgs: 1, run: cmdPromptUpdate},
		{name: "prompt-delete", args: "<id>", summary: "delete a prompt template", minArgs: 1, run: cmdPromptDelete},
		{name: "prompt-upload", args: "<prompt-id> <file>", summary: "process a document with a prompt", minArgs: 2, run: cmdPromptUpload},
		{name: "processed", args: "[id]", summary: "list processed documents or show one", run: cmdProcessed},
		{name: "processed-result", args: "<id>", summary: "show the result of a processed document", minArgs: 1, run: cmdProcessedResult},

		{name: "resumes", summary: "list resumes", run: cmdResumes},
		{name: "resume-upload", args: "<file>...", summary: "upload one or more resumes", minArgs: 1, run: cmdResumeUpload},
		{name: "requirements", summary: "list job requirements", run: cmdRequirements},
		{name: "requirement-create", args: "[title]", summary: "create a job requirement", run: cmdRequirementCreate},
		{name: "requirement-update", args: "<id>", summary: "edit a job requirement", minArgs: 1, run: cmdRequirementUpdate},
		{name: "match", args: "<requirement-id> <resume-id>...", summary: "score resumes against a requirement", minArgs: 2, run: cmdMatch},
		{name: "matches", args: "[requirement-id]", summary: "show past matches", run: cmdMatches},

		{name: "images", summary: "list generated images", run: cmdImages},
		{name: "image-generate", args: "<prompt...>", summary: "generate an image", minArgs: 1, run: cmdImageGenerate},
		{name: "image-download", args: "<id>", summary: "download an image", minArgs: 1, run: cmdImageDownload},
		{name: "image-delete", args: "<id>", summary: "delete an image", minArgs: 1, run: cmdImageDelete},

		{name: "plans", summary: "list subscription plans", run: cmdPlans},
		{name: "subscribe", args: "<plan-id>", summary: "subscribe to a plan", minArgs: 1, run: cmdSubscribe},
		{name: "cancel-subscription", summary: "cancel the current subscription", run: cmdCancelSubscription},
		{name: "subscription", args: "[history]", summary: "show the current subscription", run: cmdSubscription},
		{name: "usage", summary: "show this month's usage", run: cmdUsage},

		{name: "crm", summary: "business metrics (admin)", run: cmdCRM},
		{name: "settings", args: "[all]", summary: "list master settings (admin)", run: cmdSettings},
		{name: "setting-create", args: "<name> <value>", summary: "create a master setting (admin)", minArgs: 2, run: cmdSettingCreate},
		{name: "setting-update", args: "<name> <value>", summary: "change a master setting (admin)", minArgs: 2, run: cmdSettingUpdate},
		{name: "setting-delete", args: "<name>", summary: "delete a master setting (admin)", minArgs: 1, run: cmdSettingDelete},
		{name: "setting-activate", args: "<name>", summary: "activate a master setting (admin)", minArgs: 1, run: cmdSettingActivate},
	}
}

func lookupCommand(name string) (command, bool) {
	for _, c := range commandTable {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

// UnknownCommandError is returned by Exec for names missing from the table.
type UnknownCommandError string

func (e UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command: %s", string(e))
}

// Exec runs the named command. Commands that are not public fail with
// services.ErrNotAuthenticated unless a user is logged in.
func (a *App) Exec(ctx context.Context, name string, args []string) error {
	c, ok := lookupCommand(name)
	if !ok {
		return UnknownCommandError(name)
	}
	if !c.public {
		if err := a.session.RequireAuth(); err != nil {
			return err
		}
	}
	if len(args) < c.minArgs {
		return fmt.Errorf("usage: %s", c.usage())
	}
	return c.run(ctx, a, args)
}

func cmdHelp(_ context.Context, a *App, _ []string) error {
	loggedIn := a.session.State() == services.StateAuthenticated
	admin := a.session.IsAdmin()

	width := 0
	for _, c := range commandTable {
		width = min(max(width, len(c.usage())), 40)
	}

	printHeading(a.out, "Available commands")
	for _, c := range commandTable {
		if !loggedIn && !c.public {
			continue
		}
		if !admin && strings.HasSuffix(c.summary, "(admin)") {
			continue
		}
		fmt.Fprintf(a.out, "  %-*s  %s\n", width, c.usage(), c.summary)
	}
	fmt.Fprintf(a.out, "  %-*s  %s\n", width, "exit", "leave the program")
	return nil
}
