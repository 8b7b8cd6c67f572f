package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/mepo/stallkeeper/internal/client/services"
	"github.com/mepo/stallkeeper/internal/common"
)

// Login runs the login screen: username (prefilled when remembered),
// password, remember-me toggle. A remembered password is reused when the
// user keeps the remembered username and submits an empty password.
func (a *App) Login(ctx context.Context) error {
	sctx, cancel := a.opCtx(ctx)
	savedUser, savedPass, remembered := a.auth.SavedCredentials(sctx)
	cancel()

	username, err := GetTextWithDefault(a.reader, "Enter username", savedUser, a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	var password string
	if remembered && username == savedUser {
		password = savedPass
		fmt.Fprintln(a.out, "Using remembered password.")
	} else {
		pw, err := GetPassword(a.out)
		if err != nil {
			fmt.Fprintf(a.out, "error: %v\n", err)
			return err
		}
		password = string(pw)
	}

	rememberMe, err := GetYesNo(a.reader, "Remember me on this device?", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	lctx, cancel := a.opCtx(ctx)
	defer cancel()
	id, err := a.auth.Login(lctx, username, password, rememberMe)
	switch {
	case errors.Is(err, common.ErrValidation):
		fmt.Fprintln(a.out, "Please enter both username and password.")
		return err
	case errors.Is(err, common.ErrInvalidCredentials):
		fmt.Fprintln(a.out, "Incorrect username or password.")
		return err
	case err != nil:
		fmt.Fprintln(a.out, "Login failed, please try again later.")
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", id.FullName)
	return nil
}

// Register runs the registration screen and submits the application for
// approval.
func (a *App) Register(ctx context.Context) error {
	form := services.RegistrationForm{}

	fields := []struct {
		prompt string
		target *string
	}{
		{"Full name", &form.FullName},
		{"Email", &form.Email},
		{"Contact number", &form.ContactNumber},
		{"Address", &form.Address},
		{"Username", &form.UserName},
	}
	for _, f := range fields {
		v, err := GetSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			fmt.Fprintf(a.out, "error: %v\n", err)
			return err
		}
		*f.target = v
	}

	pw, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	form.Password = string(pw)

	rctx, cancel := a.opCtx(ctx)
	defer cancel()
	err = a.auth.Register(rctx, form)
	switch {
	case errors.Is(err, common.ErrValidation):
		fmt.Fprintf(a.out, "%v\n", err)
		return err
	case errors.Is(err, common.ErrUsernameTaken):
		fmt.Fprintln(a.out, "That username is already taken, please choose another.")
		return err
	case err != nil:
		fmt.Fprintln(a.out, "Registration failed, please try again later.")
		return err
	}

	fmt.Fprintln(a.out, "Registration submitted. Your application is awaiting approval by the MEPO.")
	return nil
}

// Logout ends the session. It always succeeds from the user's point of view.
func (a *App) Logout(ctx context.Context) error {
	lctx, cancel := a.opCtx(ctx)
	defer cancel()
	a.session.Logout(lctx)
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
