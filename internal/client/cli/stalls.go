package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/mepo/stallkeeper/internal/common"
	"github.com/mepo/stallkeeper/internal/recordstore/stalls"
)

func (a *App) printStalls(list []stalls.Stall) {
	if len(list) == 0 {
		fmt.Fprintln(a.out, "  (none)")
		return
	}
	for _, s := range list {
		fmt.Fprintf(a.out, "  Stall %s — %s", s.StallNo, s.Location)
		if s.Zone != "" {
			fmt.Fprintf(a.out, " (zone %s, floor %s, section %s)", s.Zone, s.FloorLevel, s.Section)
		}
		if s.Description != "" {
			fmt.Fprintf(a.out, ": %s", s.Description)
		}
		fmt.Fprintln(a.out)
	}
}

// Stalls lists the stalls assigned to the acting stallholder.
func (a *App) Stalls(ctx context.Context) error {
	sctx, cancel := a.opCtx(ctx)
	defer cancel()
	list, err := a.stalls.YourStalls(sctx)
	if errors.Is(err, common.ErrNotAuthenticated) {
		fmt.Fprintln(a.out, "Please log in to see your stalls.")
		return err
	}
	if err != nil {
		fmt.Fprintln(a.out, "Could not load your stalls, please try again later.")
		return err
	}

	fmt.Fprintln(a.out, "Your stalls:")
	a.printStalls(list)
	return nil
}

// Auction lists the stalls currently open for auction. No login required.
func (a *App) Auction(ctx context.Context) error {
	actx, cancel := a.opCtx(ctx)
	defer cancel()
	list, err := a.stalls.AuctionStalls(actx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load auction stalls, please try again later.")
		return err
	}

	fmt.Fprintln(a.out, "Stalls open for auction:")
	a.printStalls(list)
	return nil
}

// PreRegister records the stallholder's interest in the upcoming auctions
// and confirms with the advisory notification.
func (a *App) PreRegister(ctx context.Context) error {
	n, err := a.stalls.PreRegister(ctx)
	if errors.Is(err, common.ErrNotAuthenticated) {
		fmt.Fprintln(a.out, "Please log in to pre-register for auctions.")
		return err
	}
	if err != nil {
		fmt.Fprintln(a.out, "Pre-registration failed, please try again later.")
		return err
	}

	fmt.Fprintln(a.out, n.Message)
	return nil
}
