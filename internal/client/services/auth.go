// Package services contains the application services behind each screen of
// the stallkeeper client. This file holds the authentication flows: login
// with remember-me, registration, and saved-credential prefill.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mepo/stallkeeper/internal/client/kvstore"
	"github.com/mepo/stallkeeper/internal/client/session"
	"github.com/mepo/stallkeeper/internal/common"
	"github.com/mepo/stallkeeper/internal/dbx"
	"github.com/mepo/stallkeeper/internal/logging"
	"github.com/mepo/stallkeeper/internal/recordstore/registrants"
)

// RegistrationForm carries the six fields of the registration screen. All of
// them are required.
type RegistrationForm struct {
	FullName      string
	Email         string
	ContactNumber string
	Address       string
	UserName      string
	Password      string
}

// AuthService defines the login and registration flows.
//
// Contract:
//   - Login: authenticate against the record store, persist remembered
//     credentials per the remember-me flag, and move the session to LoggedIn.
//     Zero matches surface common.ErrInvalidCredentials; record store
//     failures surface wrapped and leave the session untouched.
//   - Register: uniqueness-check the username, then insert a pending
//     registrant. The check and the insert are not atomic; a concurrent
//     registration of the same username can slip between them and is left to
//     the record store's own constraints.
//   - SavedCredentials: return the remembered username/password when the
//     remember-me flag was persisted as "true".
type AuthService interface {
	Login(ctx context.Context, username, password string, rememberMe bool) (session.Identity, error)
	Register(ctx context.Context, form RegistrationForm) error
	SavedCredentials(ctx context.Context) (username, password string, ok bool)
}

type authService struct {
	registrants registrants.Repository
	sess        *session.Manager
	db          *sql.DB
	log         logging.Logger
}

// NewAuthService binds the auth flows to the registrant collection, the
// session manager and the local database holding the key-value store.
func NewAuthService(reg registrants.Repository, sess *session.Manager, db *sql.DB, log logging.Logger) AuthService {
	return &authService{registrants: reg, sess: sess, db: db, log: log}
}

func (a *authService) store() kvstore.Store {
	return kvstore.NewSQLiteStore(a.db)
}

// Login authenticates the username/password pair. Whitespace-trimming is
// applied to the emptiness check only; the record store comparison uses the
// values exactly as submitted.
func (a *authService) Login(ctx context.Context, username, password string, rememberMe bool) (session.Identity, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return session.Identity{}, fmt.Errorf("%w: please enter both username and password", common.ErrValidation)
	}

	reg, err := a.registrants.FindApproved(ctx, username, password)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// One message for wrong password, unknown user and
			// pending approval alike.
			return session.Identity{}, common.ErrInvalidCredentials
		}
		a.log.Error(ctx, "login query failed", "error", err)
		return session.Identity{}, fmt.Errorf("record store error: %w", err)
	}

	if err := a.persistRememberedCredentials(ctx, username, password, rememberMe); err != nil {
		a.log.Error(ctx, "failed to update remembered credentials", "error", err)
		return session.Identity{}, err
	}

	id := session.Identity{
		Email:          reg.Email,
		FullName:       reg.FullName,
		RegistrationID: reg.RegistrationID,
	}
	if err := a.sess.Login(ctx, id); err != nil {
		return session.Identity{}, err
	}

	a.log.Info(ctx, "login succeeded", "username", username, "registrationId", reg.RegistrationID)
	return id, nil
}

// persistRememberedCredentials writes or clears the saved credentials in one
// transaction, per the remember-me toggle.
func (a *authService) persistRememberedCredentials(ctx context.Context, username, password string, rememberMe bool) error {
	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		s := kvstore.NewSQLiteStore(tx)
		if !rememberMe {
			return s.Remove(ctx, session.KeySavedUsername, session.KeySavedPassword, session.KeyRememberMe)
		}
		if err := s.Set(ctx, session.KeySavedUsername, username); err != nil {
			return err
		}
		if err := s.Set(ctx, session.KeySavedPassword, password); err != nil {
			return err
		}
		return s.Set(ctx, session.KeyRememberMe, "true")
	})
}

// SavedCredentials loads the remembered username/password. ok is true only
// when all three remember-me keys were persisted by a previous login.
func (a *authService) SavedCredentials(ctx context.Context) (string, string, bool) {
	s := a.store()

	flag, err := s.Get(ctx, session.KeyRememberMe)
	if err != nil || flag != "true" {
		return "", "", false
	}
	username, err := s.Get(ctx, session.KeySavedUsername)
	if err != nil || username == "" {
		return "", "", false
	}
	password, err := s.Get(ctx, session.KeySavedPassword)
	if err != nil || password == "" {
		return "", "", false
	}
	return username, password, true
}

// Register runs the uniqueness check and inserts the pending registrant.
func (a *authService) Register(ctx context.Context, form RegistrationForm) error {
	for _, field := range []string{
		form.FullName, form.Email, form.ContactNumber,
		form.Address, form.UserName, form.Password,
	} {
		if strings.TrimSpace(field) == "" {
			return fmt.Errorf("%w: please complete all required fields", common.ErrValidation)
		}
	}

	exists, err := a.registrants.UsernameExists(ctx, form.UserName)
	if err != nil {
		a.log.Error(ctx, "username check failed", "error", err)
		return fmt.Errorf("record store error: %w", err)
	}
	if exists {
		return common.ErrUsernameTaken
	}

	reg := &registrants.Registrant{
		UserName:      form.UserName,
		Password:      form.Password,
		FullName:      form.FullName,
		Email:         form.Email,
		ContactNumber: form.ContactNumber,
		Address:       form.Address,
		Status:        registrants.StatusPending,
	}
	if err := a.registrants.Create(ctx, reg); err != nil {
		a.log.Error(ctx, "registration insert failed", "error", err)
		return fmt.Errorf("record store error: %w", err)
	}

	a.log.Info(ctx, "registration submitted", "username", form.UserName)
	return nil
}
