package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/sachink160/multitool-client/internal/client/models"
)

func cmdChat(ctx context.Context, a *App, args []string) error {
	msg, err := a.askIfEmpty(strings.Join(args, " "), "You")
	if err != nil {
		return err
	}
	reply, err := a.chat.Send(ctx, msg)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s %s\n", labelStyle.Render("Assistant:"), reply)
	return nil
}

func cmdChatHistory(ctx context.Context, a *App, _ []string) error {
	if err := a.chat.Refresh(ctx); err != nil {
		return err
	}
	msgs := a.chat.History.Items()
	if len(msgs) == 0 {
		a.println(dimStyle.Render("No messages yet"))
		return nil
	}
	for _, m := range msgs {
		who := "You:"
		if m.Sender == models.SenderAssistant {
			who = "Assistant:"
		}
		line := fmt.Sprintf("%s %s", labelStyle.Render(who), m.Content)
		if m.Timestamp != "" {
			line += " " + dimStyle.Render(m.Timestamp)
		}
		a.println(line)
	}
	return nil
}
