// Package applicants is the applicant-profile collection of the record store:
// the extended stallholder profile joined with the registrant record, stall
// assignment and spouse information.
package applicants

import "context"

// Profile is the aggregate the profile screen renders. Optional sections
// (stall, spouse) come back as empty strings when absent.
type Profile struct {
	RegistrationID string

	FullName      string
	Address       string
	ContactNumber string
	UserName      string
	Email         string

	BirthDate   string
	CivilStatus string
	Education   string

	BusinessNature  string
	Capitalization  string
	SourceOfCapital string

	StallNo          string
	StallLocation    string
	StallDescription string

	SpouseName      string
	SpouseBirthDate string
	SpouseEducation string
	SpouseOccupation string
}

type Repository interface {
	// GetByRegistrationID returns the applicant profile for a registration
	// id, or common.ErrNotFound when no applicant row exists yet.
	GetByRegistrationID(ctx context.Context, registrationID string) (*Profile, error)
}
