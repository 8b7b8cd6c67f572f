package cli

import (
	"context"
	"fmt"
)

// Notifications prints the in-memory feed, most recent first.
func (a *App) Notifications(ctx context.Context) error {
	list := a.feed.List()

	fmt.Fprintln(a.out, "Notifications:")
	if len(list) == 0 {
		fmt.Fprintln(a.out, "  (none)")
		return nil
	}
	for _, n := range list {
		fmt.Fprintf(a.out, "  %s  %s\n", n.Date.Format("2006-01-02 15:04"), n.Message)
	}
	return nil
}
