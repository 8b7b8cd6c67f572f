// Package stalls is the stall collection of the record store: assigned stalls
// per registrant plus the catalog of stalls currently open for auction.
package stalls

import "context"

type Stall struct {
	ID             string
	StallNo        string
	Location       string
	Description    string
	Zone           string
	FloorLevel     string
	Section        string
	RegistrationID string
}

type Repository interface {
	// ListByRegistration returns the stalls assigned to a registration id.
	ListByRegistration(ctx context.Context, registrationID string) ([]Stall, error)

	// ListOpenForAuction returns unassigned stalls, ordered by stall number.
	ListOpenForAuction(ctx context.Context) ([]Stall, error)
}
