// Package payments is the payment-history collection of the record store.
package payments

import (
	"context"
	"time"
)

type Payment struct {
	ID             string
	RegistrationID string
	Amount         float64
	PaymentDate    time.Time
	Method         string
	Status         string
}

type Repository interface {
	// ListByRegistration returns the payment history for a registration id,
	// most recent first.
	ListByRegistration(ctx context.Context, registrationID string) ([]Payment, error)
}
