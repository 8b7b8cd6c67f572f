package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/mepo/stallkeeper/internal/common"
	"github.com/mepo/stallkeeper/internal/recordstore/registrants"
)

// Profile prints the applicant profile of the acting stallholder. When only
// the bare registrant record exists, the optional sections stay blank.
func (a *App) Profile(ctx context.Context) error {
	gctx, cancel := a.opCtx(ctx)
	defer cancel()
	p, err := a.profile.Get(gctx)
	if errors.Is(err, common.ErrNotAuthenticated) {
		fmt.Fprintln(a.out, "Please log in to see your profile.")
		return err
	}
	if err != nil {
		fmt.Fprintln(a.out, "Could not load your profile, please try again later.")
		return err
	}

	fmt.Fprintf(a.out, "Name:           %s\n", p.FullName)
	fmt.Fprintf(a.out, "Username:       %s\n", p.UserName)
	fmt.Fprintf(a.out, "Email:          %s\n", p.Email)
	fmt.Fprintf(a.out, "Contact number: %s\n", p.ContactNumber)
	fmt.Fprintf(a.out, "Address:        %s\n", p.Address)
	if p.BusinessNature != "" {
		fmt.Fprintf(a.out, "Business:       %s (capital %s, source %s)\n",
			p.BusinessNature, p.Capitalization, p.SourceOfCapital)
	}
	if p.StallNo != "" {
		fmt.Fprintf(a.out, "Stall:          %s — %s\n", p.StallNo, p.StallLocation)
	}
	if p.SpouseName != "" {
		fmt.Fprintf(a.out, "Spouse:         %s (%s)\n", p.SpouseName, p.SpouseOccupation)
	}
	return nil
}

// EditProfile updates the registrant's contact details. Current values are
// offered as defaults; submitting an empty line keeps them.
func (a *App) EditProfile(ctx context.Context) error {
	gctx, cancel := a.opCtx(ctx)
	p, err := a.profile.Get(gctx)
	cancel()
	if errors.Is(err, common.ErrNotAuthenticated) {
		fmt.Fprintln(a.out, "Please log in to edit your profile.")
		return err
	}
	if err != nil {
		fmt.Fprintln(a.out, "Could not load your profile, please try again later.")
		return err
	}

	upd := registrants.ContactUpdate{}
	fields := []struct {
		prompt  string
		current string
		target  *string
	}{
		{"Full name", p.FullName, &upd.FullName},
		{"Email", p.Email, &upd.Email},
		{"Contact number", p.ContactNumber, &upd.ContactNumber},
		{"Address", p.Address, &upd.Address},
		{"Username", p.UserName, &upd.UserName},
	}
	for _, f := range fields {
		v, err := GetTextWithDefault(a.reader, f.prompt, f.current, a.out)
		if err != nil {
			fmt.Fprintf(a.out, "error: %v\n", err)
			return err
		}
		*f.target = v
	}

	// The update overwrites the whole credential record, so the password is
	// re-entered rather than prefilled.
	pw, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	upd.Password = string(pw)

	uctx, cancel := a.opCtx(ctx)
	defer cancel()
	err = a.profile.UpdateContact(uctx, upd)
	switch {
	case errors.Is(err, common.ErrValidation):
		fmt.Fprintf(a.out, "%v\n", err)
		return err
	case err != nil:
		fmt.Fprintln(a.out, "Update failed, please try again later.")
		return err
	}

	fmt.Fprintln(a.out, "Profile updated.")
	return nil
}
