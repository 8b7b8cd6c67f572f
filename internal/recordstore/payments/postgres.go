package payments

import (
	"context"
	"fmt"

	"github.com/mepo/stallkeeper/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByRegistration(ctx context.Context, registrationID string) ([]Payment, error) {
	query :=
		`SELECT id, registration_id, amount, payment_date, COALESCE(method, ''), COALESCE(status, '')
		 FROM payment
		 WHERE registration_id = $1
		 ORDER BY payment_date DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, registrationID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []Payment
	for rows.Next() {
		var p Payment
		if err := rows.Scan(&p.ID, &p.RegistrationID, &p.Amount, &p.PaymentDate, &p.Method, &p.Status); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
