package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/mepo/stallkeeper/internal/common"
)

// Dashboard prints the announcement board and the payment history of the
// acting stallholder, most recent payment first.
func (a *App) Dashboard(ctx context.Context) error {
	fmt.Fprintln(a.out, "Announcements:")
	for _, ann := range a.dashboard.Announcements() {
		fmt.Fprintf(a.out, "  [%s] %s — %s\n", ann.ID, ann.Title, ann.Body)
	}

	hctx, cancel := a.opCtx(ctx)
	defer cancel()
	history, err := a.dashboard.PaymentHistory(hctx)
	if errors.Is(err, common.ErrNotAuthenticated) {
		fmt.Fprintln(a.out, "Please log in to see your payment history.")
		return err
	}
	if err != nil {
		fmt.Fprintln(a.out, "Could not load payment history, please try again later.")
		return err
	}

	fmt.Fprintln(a.out, "Payment history:")
	if len(history) == 0 {
		fmt.Fprintln(a.out, "  (no payments on record)")
		return nil
	}
	for _, p := range history {
		fmt.Fprintf(a.out, "  %s  %.2f  %s  %s\n", p.PaymentDate.Format("2006-01-02"), p.Amount, p.Method, p.Status)
	}
	return nil
}
