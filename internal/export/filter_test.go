package export_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vpstudios/backlot/internal/domain/submission"
	"github.com/vpstudios/backlot/internal/export"
)

func sampleSubmissions() []submission.Submission {
	return []submission.Submission{
		{ID: "VP-2026-000003", PackageType: "lite", Status: submission.StatusReceived,
			SubmissionDate: time.Date(2026, 5, 3, 10, 0, 0, 0, time.UTC)},
		{ID: "VP-2026-000002", PackageType: "signature", Status: submission.StatusInProduction,
			SubmissionDate: time.Date(2026, 5, 2, 10, 0, 0, 0, time.UTC)},
		{ID: "VP-2026-000001", PackageType: "lite", Status: submission.StatusDelivered,
			SubmissionDate: time.Date(2026, 5, 2, 23, 59, 0, 0, time.UTC)},
	}
}

func ids(subs []submission.Submission) []string {
	out := make([]string, len(subs))
	for i, sub := range subs {
		out[i] = sub.ID
	}
	return out
}

func TestFilter_Unset(t *testing.T) {
	subs := sampleSubmissions()
	require.Equal(t, ids(subs), ids(export.Filter{}.Apply(subs)))
}

func TestFilter_AllEquivalentToUnset(t *testing.T) {
	subs := sampleSubmissions()
	f := export.Filter{Status: "all", Package: "all"}
	require.Equal(t, ids(subs), ids(f.Apply(subs)))
}

func TestFilter_Status(t *testing.T) {
	got := export.Filter{Status: "delivered"}.Apply(sampleSubmissions())
	require.Equal(t, []string{"VP-2026-000001"}, ids(got))
}

func TestFilter_Package(t *testing.T) {
	got := export.Filter{Package: "lite"}.Apply(sampleSubmissions())
	require.Equal(t, []string{"VP-2026-000003", "VP-2026-000001"}, ids(got))
}

func TestFilter_Date(t *testing.T) {
	// Both the morning and the near-midnight submission land on 2026-05-02.
	got := export.Filter{Date: "2026-05-02"}.Apply(sampleSubmissions())
	require.Equal(t, []string{"VP-2026-000002", "VP-2026-000001"}, ids(got))
}

func TestFilter_Conjunction(t *testing.T) {
	got := export.Filter{Package: "lite", Date: "2026-05-02"}.Apply(sampleSubmissions())
	require.Equal(t, []string{"VP-2026-000001"}, ids(got))

	got = export.Filter{Status: "received", Package: "signature"}.Apply(sampleSubmissions())
	require.Empty(t, got)
}
