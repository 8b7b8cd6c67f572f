package services

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mepo/stallkeeper/internal/common"
	"github.com/mepo/stallkeeper/internal/logging"
)

func newMessages(t *testing.T) *MessageService {
	t.Helper()
	return NewMessageService(setupDB(t), logging.NewDefault(io.Discard))
}

func TestMessages_LoadEmptyConversation(t *testing.T) {
	svc := newMessages(t)

	got, err := svc.Load(context.Background(), "MEPO Admin")
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestMessages_AppendOrderSurvivesReload(t *testing.T) {
	svc := newMessages(t)
	ctx := context.Background()

	m1, err := svc.Send(ctx, "MEPO Admin", "hello")
	require.NoError(t, err)
	m2, err := svc.Send(ctx, "MEPO Admin", "anyone there?")
	require.NoError(t, err)

	got, err := svc.Load(ctx, "MEPO Admin")
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, m1.ID, got[0].ID)
	require.Equal(t, m2.ID, got[1].ID)
	require.Equal(t, "hello", got[0].Text)
	require.Equal(t, "You", got[0].Sender)
}

func TestMessages_ConversationsAreIsolated(t *testing.T) {
	svc := newMessages(t)
	ctx := context.Background()

	_, err := svc.Send(ctx, "MEPO Admin", "hello")
	require.NoError(t, err)

	got, err := svc.Load(ctx, "Treasurer")
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestMessages_ClearEmptiesConversation(t *testing.T) {
	svc := newMessages(t)
	ctx := context.Background()

	_, err := svc.Send(ctx, "MEPO Admin", "hello")
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx, "MEPO Admin"))

	got, err := svc.Load(ctx, "MEPO Admin")
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestMessages_EmptyTextRejected(t *testing.T) {
	svc := newMessages(t)

	_, err := svc.Send(context.Background(), "MEPO Admin", "   ")
	require.ErrorIs(t, err, common.ErrValidation)
}
