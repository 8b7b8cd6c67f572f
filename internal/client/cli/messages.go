package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/mepo/stallkeeper/internal/common"
)

// Messages prints the conversation with the named counterpart, oldest first.
func (a *App) Messages(ctx context.Context, counterpart string) error {
	lctx, cancel := a.opCtx(ctx)
	defer cancel()
	msgs, err := a.messages.Load(lctx, counterpart)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load the conversation.")
		return err
	}

	fmt.Fprintf(a.out, "Conversation with %s:\n", counterpart)
	if len(msgs) == 0 {
		fmt.Fprintln(a.out, "  (no messages yet)")
		return nil
	}
	for _, m := range msgs {
		fmt.Fprintf(a.out, "  %s %s: %s\n", m.Timestamp.Format("2006-01-02 15:04"), m.Sender, m.Text)
	}
	return nil
}

// SendMessage appends a message to the conversation with the counterpart.
func (a *App) SendMessage(ctx context.Context, counterpart string) error {
	text, err := GetSimpleText(a.reader, "Message", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	sctx, cancel := a.opCtx(ctx)
	defer cancel()
	_, err = a.messages.Send(sctx, counterpart, text)
	switch {
	case errors.Is(err, common.ErrValidation):
		fmt.Fprintln(a.out, "Cannot send an empty message.")
		return err
	case err != nil:
		fmt.Fprintln(a.out, "Could not send the message.")
		return err
	}

	fmt.Fprintln(a.out, "Sent.")
	return nil
}

// ClearChat deletes the stored conversation with the counterpart.
func (a *App) ClearChat(ctx context.Context, counterpart string) error {
	cctx, cancel := a.opCtx(ctx)
	defer cancel()
	if err := a.messages.Clear(cctx, counterpart); err != nil {
		fmt.Fprintln(a.out, "Could not clear the conversation.")
		return err
	}
	fmt.Fprintf(a.out, "Conversation with %s cleared.\n", counterpart)
	return nil
}
