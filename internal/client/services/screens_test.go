package services

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mepo/stallkeeper/internal/client/session"
	"github.com/mepo/stallkeeper/internal/common"
	"github.com/mepo/stallkeeper/internal/logging"
	"github.com/mepo/stallkeeper/internal/recordstore/applicants"
	"github.com/mepo/stallkeeper/internal/recordstore/payments"
	"github.com/mepo/stallkeeper/internal/recordstore/registrants"
	"github.com/mepo/stallkeeper/internal/recordstore/stalls"
)

// ---- fakes ----

type fakePayments struct {
	Ret []payments.Payment
	Err error

	LastRegistrationID string
}

func (f *fakePayments) ListByRegistration(ctx context.Context, registrationID string) ([]payments.Payment, error) {
	f.LastRegistrationID = registrationID
	return f.Ret, f.Err
}

type fakeStalls struct {
	ByRegistrationRet []stalls.Stall
	ByRegistrationErr error
	AuctionRet        []stalls.Stall
	AuctionErr        error

	LastRegistrationID string
}

func (f *fakeStalls) ListByRegistration(ctx context.Context, registrationID string) ([]stalls.Stall, error) {
	f.LastRegistrationID = registrationID
	return f.ByRegistrationRet, f.ByRegistrationErr
}

func (f *fakeStalls) ListOpenForAuction(ctx context.Context) ([]stalls.Stall, error) {
	return f.AuctionRet, f.AuctionErr
}

type fakeApplicants struct {
	Ret *applicants.Profile
	Err error
}

func (f *fakeApplicants) GetByRegistrationID(ctx context.Context, registrationID string) (*applicants.Profile, error) {
	return f.Ret, f.Err
}

func loggedInSession(t *testing.T) *session.Manager {
	t.Helper()
	db := setupDB(t)
	m := session.NewManager(db, logging.NewDefault(io.Discard))
	ctx := context.Background()
	require.NoError(t, m.Initialize(ctx))
	require.NoError(t, m.Login(ctx, session.Identity{Email: "bob@x.com", FullName: "Bob B", RegistrationID: "7"}))
	return m
}

func loggedOutSession(t *testing.T) *session.Manager {
	t.Helper()
	db := setupDB(t)
	m := session.NewManager(db, logging.NewDefault(io.Discard))
	require.NoError(t, m.Initialize(context.Background()))
	return m
}

// ---- dashboard ----

func TestDashboard_PaymentHistoryScopedToIdentity(t *testing.T) {
	fp := &fakePayments{Ret: []payments.Payment{{ID: "p1", RegistrationID: "7", Amount: 1200, PaymentDate: time.Now()}}}
	svc := NewDashboardService(fp, loggedInSession(t))

	got, err := svc.PaymentHistory(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "7", fp.LastRegistrationID)
}

func TestDashboard_PaymentHistoryRequiresSession(t *testing.T) {
	fp := &fakePayments{}
	svc := NewDashboardService(fp, loggedOutSession(t))

	_, err := svc.PaymentHistory(context.Background())
	require.ErrorIs(t, err, common.ErrNotAuthenticated)
	require.Empty(t, fp.LastRegistrationID) // no query with an empty scope
}

func TestDashboard_AnnouncementsCatalog(t *testing.T) {
	svc := NewDashboardService(&fakePayments{}, loggedOutSession(t))

	got := svc.Announcements()
	require.Len(t, got, 3)
	require.NotEmpty(t, got[0].Title)
}

// ---- stalls / auction ----

func TestYourStalls_ScopedToIdentity(t *testing.T) {
	fs := &fakeStalls{ByRegistrationRet: []stalls.Stall{{ID: "1", StallNo: "19"}}}
	svc := NewStallService(fs, loggedInSession(t), NewFeed())

	got, err := svc.YourStalls(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "7", fs.LastRegistrationID)
}

func TestYourStalls_RequiresSession(t *testing.T) {
	fs := &fakeStalls{}
	svc := NewStallService(fs, loggedOutSession(t), NewFeed())

	_, err := svc.YourStalls(context.Background())
	require.ErrorIs(t, err, common.ErrNotAuthenticated)
}

func TestAuctionStalls_NoSessionNeeded(t *testing.T) {
	fs := &fakeStalls{AuctionRet: []stalls.Stall{{StallNo: "32", Zone: "Zone C"}}}
	svc := NewStallService(fs, loggedOutSession(t), NewFeed())

	got, err := svc.AuctionStalls(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestPreRegister_AppendsAdvisory(t *testing.T) {
	feed := NewFeed()
	svc := NewStallService(&fakeStalls{}, loggedInSession(t), feed)

	n, err := svc.PreRegister(context.Background())
	require.NoError(t, err)
	require.Contains(t, n.Message, "pre-registered for all auctions")

	listed := feed.List()
	require.Len(t, listed, 1)
	require.Equal(t, n.ID, listed[0].ID)
}

func TestPreRegister_RequiresSession(t *testing.T) {
	feed := NewFeed()
	svc := NewStallService(&fakeStalls{}, loggedOutSession(t), feed)

	_, err := svc.PreRegister(context.Background())
	require.ErrorIs(t, err, common.ErrNotAuthenticated)
	require.Empty(t, feed.List())
}

// ---- profile ----

func TestProfile_Get_FullProfile(t *testing.T) {
	fa := &fakeApplicants{Ret: &applicants.Profile{RegistrationID: "7", FullName: "Bob B", SpouseName: "Ana B"}}
	svc := NewProfileService(fa, &fakeRegistrants{}, loggedInSession(t), logging.NewDefault(io.Discard))

	got, err := svc.Get(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Ana B", got.SpouseName)
}

func TestProfile_Get_FallsBackToRegistrant(t *testing.T) {
	fa := &fakeApplicants{Err: common.ErrNotFound}
	fr := &fakeRegistrants{GetByRegistrationIDRet: &registrants.Registrant{
		RegistrationID: "7", FullName: "Bob B", Email: "bob@x.com",
		Address: "Naga", ContactNumber: "0917", UserName: "bob",
	}}
	svc := NewProfileService(fa, fr, loggedInSession(t), logging.NewDefault(io.Discard))

	got, err := svc.Get(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bob B", got.FullName)
	require.Empty(t, got.SpouseName)
}

func TestProfile_Get_RemoteFailureSurfaced(t *testing.T) {
	fa := &fakeApplicants{Err: errors.New("db down")}
	svc := NewProfileService(fa, &fakeRegistrants{}, loggedInSession(t), logging.NewDefault(io.Discard))

	_, err := svc.Get(context.Background())
	require.Error(t, err)
	require.NotErrorIs(t, err, common.ErrNotFound)
}

func TestProfile_Get_RequiresSession(t *testing.T) {
	svc := NewProfileService(&fakeApplicants{}, &fakeRegistrants{}, loggedOutSession(t), logging.NewDefault(io.Discard))

	_, err := svc.Get(context.Background())
	require.ErrorIs(t, err, common.ErrNotAuthenticated)
}

func TestProfile_UpdateContact_ScopedToIdentity(t *testing.T) {
	fr := &fakeRegistrants{}
	svc := NewProfileService(&fakeApplicants{}, fr, loggedInSession(t), logging.NewDefault(io.Discard))

	upd := registrants.ContactUpdate{
		FullName: "Bob B", Address: "Naga", ContactNumber: "0917",
		UserName: "bob", Email: "bob@x.com", Password: "hunter2",
	}
	require.NoError(t, svc.UpdateContact(context.Background(), upd))
	require.Equal(t, "7", fr.LastUpdateRegID)
	require.Equal(t, upd, fr.LastUpdate)
}

func TestProfile_UpdateContact_MissingFieldRejected(t *testing.T) {
	fr := &fakeRegistrants{}
	svc := NewProfileService(&fakeApplicants{}, fr, loggedInSession(t), logging.NewDefault(io.Discard))

	err := svc.UpdateContact(context.Background(), registrants.ContactUpdate{FullName: "Bob B"})
	require.ErrorIs(t, err, common.ErrValidation)
	require.Empty(t, fr.LastUpdateRegID)
}
