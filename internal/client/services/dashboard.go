package services

import (
	"context"

	"github.com/mepo/stallkeeper/internal/client/models"
	"github.com/mepo/stallkeeper/internal/client/session"
	"github.com/mepo/stallkeeper/internal/common"
	"github.com/mepo/stallkeeper/internal/recordstore/payments"
)

// announcements is the static bulletin catalog shown on the dashboard.
var announcements = []models.Announcement{
	{
		ID:    "1",
		Title: "New Lease & Tenant Management System Now Live!",
		Body: "Dear Tenants, we are pleased to introduce our new Lease and Tenant " +
			"Management System. Through this platform you can access your lease " +
			"details, track payment history, and receive updates - all in one place.",
	},
	{
		ID:    "2",
		Title: "Your Important Papers Are Now Easier to Reach!",
		Body: "All your essential documents - lease agreements, receipts, and " +
			"notices - are now securely available online. Check the Documents " +
			"section to view your records anytime.",
	},
	{
		ID:    "3",
		Title: "Payment Reminders & Maintenance Made Easy",
		Body: "Never miss a due date again! The system now reminds you when rent " +
			"is due, and maintenance concerns can be reported directly through it.",
	},
}

// DashboardService backs the dashboard screen: the announcement catalog plus
// the acting stallholder's payment history.
type DashboardService struct {
	payments payments.Repository
	sess     *session.Manager
}

func NewDashboardService(p payments.Repository, sess *session.Manager) *DashboardService {
	return &DashboardService{payments: p, sess: sess}
}

func (d *DashboardService) Announcements() []models.Announcement {
	out := make([]models.Announcement, len(announcements))
	copy(out, announcements)
	return out
}

// PaymentHistory returns the payment records scoped to the acting identity,
// most recent first. Without a logged-in identity it refuses with
// common.ErrNotAuthenticated instead of querying with an empty scope.
func (d *DashboardService) PaymentHistory(ctx context.Context) ([]payments.Payment, error) {
	id, ok := d.sess.Current()
	if !ok || id.RegistrationID == "" {
		return nil, common.ErrNotAuthenticated
	}
	return d.payments.ListByRegistration(ctx, id.RegistrationID)
}
