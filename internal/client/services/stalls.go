package services

import (
	"context"

	"github.com/mepo/stallkeeper/internal/client/models"
	"github.com/mepo/stallkeeper/internal/client/session"
	"github.com/mepo/stallkeeper/internal/common"
	"github.com/mepo/stallkeeper/internal/recordstore/stalls"
)

// preRegisterAdvisory is appended to the notification feed when a stallholder
// pre-registers for the auctions.
const preRegisterAdvisory = "You have pre-registered for all auctions, please " +
	"stand by for the date of the auction at the office of the MEPO."

// StallService backs the your-stalls and auction screens.
type StallService struct {
	stalls stalls.Repository
	sess   *session.Manager
	feed   *Feed
}

func NewStallService(s stalls.Repository, sess *session.Manager, feed *Feed) *StallService {
	return &StallService{stalls: s, sess: sess, feed: feed}
}

// YourStalls returns the stalls assigned to the acting identity. A missing
// identity is an error, never a stand-in registrant.
func (s *StallService) YourStalls(ctx context.Context) ([]stalls.Stall, error) {
	id, ok := s.sess.Current()
	if !ok || id.RegistrationID == "" {
		return nil, common.ErrNotAuthenticated
	}
	return s.stalls.ListByRegistration(ctx, id.RegistrationID)
}

// AuctionStalls lists the stalls currently open for auction. Browsing the
// catalog does not require a session.
func (s *StallService) AuctionStalls(ctx context.Context) ([]stalls.Stall, error) {
	return s.stalls.ListOpenForAuction(ctx)
}

// PreRegister records the stallholder's interest in the upcoming auctions by
// appending the MEPO advisory to the local notification feed.
func (s *StallService) PreRegister(ctx context.Context) (models.Notification, error) {
	if _, ok := s.sess.Current(); !ok {
		return models.Notification{}, common.ErrNotAuthenticated
	}
	return s.feed.Add(preRegisterAdvisory), nil
}
