// Package registrants is the credential/profile collection of the record
// store. A registrant row doubles as the credential record: the stored
// password is compared as a plain string, which mirrors the backend contract
// rather than endorsing it.
package registrants

import "context"

// Approval states of a registrant account.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Registrant is one row of the registrant collection.
type Registrant struct {
	ID             string
	RegistrationID string
	UserName       string
	Password       string
	FullName       string
	Email          string
	ContactNumber  string
	Address        string
	Status         string
}

// ContactUpdate carries the profile fields a stallholder may edit.
// Updates are unconditional by registration id, last writer wins.
type ContactUpdate struct {
	FullName      string
	Address       string
	ContactNumber string
	UserName      string
	Email         string
	Password      string
}

type Repository interface {
	// FindApproved returns the registrant matching username and password
	// exactly, with approved status. common.ErrNotFound covers unknown
	// usernames, wrong passwords and unapproved accounts alike.
	FindApproved(ctx context.Context, username, password string) (*Registrant, error)

	// UsernameExists reports whether any registrant holds the username,
	// regardless of status.
	UsernameExists(ctx context.Context, username string) (bool, error)

	// Create inserts a new registrant. Status should be StatusPending.
	Create(ctx context.Context, r *Registrant) error

	// GetByRegistrationID returns the registrant owning the registration id.
	GetByRegistrationID(ctx context.Context, registrationID string) (*Registrant, error)

	// UpdateContact overwrites the editable profile fields.
	UpdateContact(ctx context.Context, registrationID string, upd ContactUpdate) error
}
