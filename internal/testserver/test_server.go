package testserver

import (
	"context"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vpstudios/backlot/internal/catalog"
	"github.com/vpstudios/backlot/internal/domain/asset"
	"github.com/vpstudios/backlot/internal/domain/credits"
	"github.com/vpstudios/backlot/internal/domain/history"
	"github.com/vpstudios/backlot/internal/domain/submission"
	"github.com/vpstudios/backlot/internal/sqlite"
	"github.com/vpstudios/backlot/internal/transport"
)

// TestServer is a fully wired in-process server over an in-memory database.
type TestServer struct {
	Server      *httptest.Server
	DB          *sqlite.DB
	Submissions *submission.Service
	History     *history.Service
}

// New starts a test server backed by a fresh in-memory SQLite database.
func New(t *testing.T) *TestServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	cat := catalog.Default()

	submissionSvc := submission.NewService(sqlite.NewSubmissionRepository(db), nil)
	historySvc := history.NewService(sqlite.NewHistoryRepository(db), nil)
	assetSvc := asset.NewService(sqlite.NewAssetRepository(db), nil)
	creditsSvc := credits.NewService(sqlite.NewCreditsRepository(db), nil)

	submissionSvc.OnTransition(func(ctx context.Context, event submission.TransitionEvent) {
		entry := &history.Entry{
			SubmissionID: event.SubmissionID,
			FromStatus:   string(event.From),
			ToStatus:     string(event.To),
			CreatedAt:    event.At,
		}
		if id, ok := transport.IdentityFromContext(ctx); ok {
			entry.ChangedBy = id.Subject
		}
		_ = historySvc.Record(ctx, entry)
	})

	server := httptest.NewServer(transport.NewServer(transport.Services{
		Submissions: submissionSvc,
		History:     historySvc,
		Assets:      assetSvc,
		Credits:     creditsSvc,
		Catalog:     cat,
	}))

	ts := &TestServer{
		Server:      server,
		DB:          db,
		Submissions: submissionSvc,
		History:     historySvc,
	}

	t.Cleanup(func() {
		server.Close()
		_ = db.Close()
	})

	return ts
}
