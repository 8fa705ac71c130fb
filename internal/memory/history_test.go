package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vpstudios/backlot/internal/domain/history"
	"github.com/vpstudios/backlot/internal/memory"
)

func TestHistoryStore_LogAndList(t *testing.T) {
	ctx := context.Background()
	store := memory.NewHistoryStore()

	first := &history.Entry{SubmissionID: "VP-2026-000001", FromStatus: "received", ToStatus: "in-production"}
	second := &history.Entry{SubmissionID: "VP-2026-000001", FromStatus: "in-production", ToStatus: "delivered"}
	require.NoError(t, store.Log(ctx, first))
	require.NoError(t, store.Log(ctx, second))
	require.Equal(t, int64(1), first.ID)
	require.Equal(t, int64(2), second.ID)

	entries, err := store.ListBySubmission(ctx, "VP-2026-000001")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "delivered", entries[1].ToStatus)

	none, err := store.ListBySubmission(ctx, "VP-2026-000002")
	require.NoError(t, err)
	require.Empty(t, none)
}
