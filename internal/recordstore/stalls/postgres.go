package stalls

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mepo/stallkeeper/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func collect(rows *sql.Rows) ([]Stall, error) {
	defer rows.Close()

	var result []Stall
	for rows.Next() {
		var s Stall
		var registrationID sql.NullString
		if err := rows.Scan(&s.ID, &s.StallNo, &s.Location, &s.Description,
			&s.Zone, &s.FloorLevel, &s.Section, &registrationID); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		s.RegistrationID = registrationID.String
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

const stallColumns = `id, stall_no, stall_location, COALESCE(description, ''), COALESCE(zone, ''), COALESCE(floor_level, ''), COALESCE(section, ''), registration_id`

func (r *PostgresRepository) ListByRegistration(ctx context.Context, registrationID string) ([]Stall, error) {
	query :=
		`SELECT ` + stallColumns + ` FROM stall
		 WHERE registration_id = $1
		 ORDER BY stall_no
		 `

	rows, err := r.db.QueryContext(ctx, query, registrationID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return collect(rows)
}

func (r *PostgresRepository) ListOpenForAuction(ctx context.Context) ([]Stall, error) {
	query :=
		`SELECT ` + stallColumns + ` FROM stall
		 WHERE registration_id IS NULL
		 ORDER BY stall_no
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return collect(rows)
}
