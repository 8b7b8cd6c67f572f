package applicants

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mepo/stallkeeper/internal/common"
	"github.com/mepo/stallkeeper/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByRegistrationID(ctx context.Context, registrationID string) (*Profile, error) {
	query :=
		`SELECT a.registration_id,
		        r.full_name, r.address, r.contact_number, r.user_name, r.email,
		        COALESCE(a.registrant_birth_date, ''),
		        COALESCE(a.registrant_civil_status, ''),
		        COALESCE(a.registrant_educational_attainment, ''),
		        COALESCE(a.nature_of_business, ''),
		        COALESCE(a.capitalization, ''),
		        COALESCE(a.source_of_capital, ''),
		        COALESCE(st.stall_no, ''),
		        COALESCE(st.stall_location, ''),
		        COALESCE(st.description, ''),
		        COALESCE(sp.spouse_full_name, ''),
		        COALESCE(sp.spouse_birth_date, ''),
		        COALESCE(sp.spouse_educational_attainment, ''),
		        COALESCE(sp.spouse_occupation, '')
		 FROM applicant a
		 JOIN registrant r ON r.registration_id = a.registration_id
		 LEFT JOIN stall st ON st.registration_id = a.registration_id
		 LEFT JOIN spouse_information sp ON sp.applicant_id = a.id
		 WHERE a.registration_id = $1
		 `

	p := &Profile{}
	err := r.db.QueryRowContext(ctx, query, registrationID).Scan(
		&p.RegistrationID,
		&p.FullName, &p.Address, &p.ContactNumber, &p.UserName, &p.Email,
		&p.BirthDate, &p.CivilStatus, &p.Education,
		&p.BusinessNature, &p.Capitalization, &p.SourceOfCapital,
		&p.StallNo, &p.StallLocation, &p.StallDescription,
		&p.SpouseName, &p.SpouseBirthDate, &p.SpouseEducation, &p.SpouseOccupation,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}
