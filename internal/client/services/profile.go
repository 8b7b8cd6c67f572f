package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mepo/stallkeeper/internal/client/session"
	"github.com/mepo/stallkeeper/internal/common"
	"github.com/mepo/stallkeeper/internal/logging"
	"github.com/mepo/stallkeeper/internal/recordstore/applicants"
	"github.com/mepo/stallkeeper/internal/recordstore/registrants"
)

// ProfileService backs the profile and edit-profile screens.
type ProfileService struct {
	applicants  applicants.Repository
	registrants registrants.Repository
	sess        *session.Manager
	log         logging.Logger
}

func NewProfileService(a applicants.Repository, r registrants.Repository, sess *session.Manager, log logging.Logger) *ProfileService {
	return &ProfileService{applicants: a, registrants: r, sess: sess, log: log}
}

// Get returns the full applicant profile for the acting identity. When no
// applicant row exists yet, it falls back to the bare registrant record so a
// freshly approved account still sees its contact details.
func (p *ProfileService) Get(ctx context.Context) (*applicants.Profile, error) {
	id, ok := p.sess.Current()
	if !ok || id.RegistrationID == "" {
		return nil, common.ErrNotAuthenticated
	}

	profile, err := p.applicants.GetByRegistrationID(ctx, id.RegistrationID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	p.log.Info(ctx, "no applicant profile, falling back to registrant record",
		"registrationId", id.RegistrationID)

	reg, err := p.registrants.GetByRegistrationID(ctx, id.RegistrationID)
	if err != nil {
		return nil, err
	}
	return &applicants.Profile{
		RegistrationID: reg.RegistrationID,
		FullName:       reg.FullName,
		Address:        reg.Address,
		ContactNumber:  reg.ContactNumber,
		UserName:       reg.UserName,
		Email:          reg.Email,
	}, nil
}

// UpdateContact overwrites the editable registrant fields for the acting
// identity. Last writer wins; there is no concurrency token.
func (p *ProfileService) UpdateContact(ctx context.Context, upd registrants.ContactUpdate) error {
	id, ok := p.sess.Current()
	if !ok || id.RegistrationID == "" {
		return common.ErrNotAuthenticated
	}

	for _, field := range []string{
		upd.FullName, upd.Address, upd.ContactNumber,
		upd.UserName, upd.Email, upd.Password,
	} {
		if strings.TrimSpace(field) == "" {
			return fmt.Errorf("%w: please fill in all fields", common.ErrValidation)
		}
	}

	return p.registrants.UpdateContact(ctx, id.RegistrationID, upd)
}
