package registrants

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

const registrantColumns = `id, registration_id, user_name, password, full_name, email, contact_number, address, status`

func scanRegistrant(row *sql.Row) (*Registrant, error) {
	r := &Registrant{}
	err := row.Scan(&r.ID, &r.RegistrationID, &r.UserName, &r.Password,
		&r.FullName, &r.Email, &r.ContactNumber, &r.Address, &r.Status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return r, nil
}

func (r *PostgresRepository) FindApproved(ctx context.Context, username, password string) (*Registrant, error) {
	query :=
		`SELECT ` + registrantColumns + ` FROM registrant
		 WHERE user_name = $1 AND password = $2 AND status = $3
		 `
	return scanRegistrant(r.db.QueryRowContext(ctx, query, username, password, StatusApproved))
}

func (r *PostgresRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	query :=
		`SELECT EXISTS (SELECT 1 FROM registrant WHERE user_name = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, username).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

func (r *PostgresRepository) Create(ctx context.Context, reg *Registrant) error {
	query :=
		`INSERT INTO registrant (user_name, password, full_name, email, contact_number, address, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, registration_id
		 `

	err := r.db.QueryRowContext(ctx, query,
		reg.UserName, reg.Password, reg.FullName, reg.Email,
		reg.ContactNumber, reg.Address, reg.Status).Scan(&reg.ID, &reg.RegistrationID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetByRegistrationID(ctx context.Context, registrationID string) (*Registrant, error) {
	query :=
		`SELECT ` + registrantColumns + ` FROM registrant
		 WHERE registration_id = $1
		 `
	return scanRegistrant(r.db.QueryRowContext(ctx, query, registrationID))
}

func (r *PostgresRepository) UpdateContact(ctx context.Context, registrationID string, upd ContactUpdate) error {
	query :=
		`UPDATE registrant
		 SET full_name = $1, address = $2, contact_number = $3, user_name = $4, email = $5, password = $6
		 WHERE registration_id = $7
		 `

	res, err := r.db.ExecContext(ctx, query,
		upd.FullName, upd.Address, upd.ContactNumber, upd.UserName, upd.Email, upd.Password, registrationID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}
