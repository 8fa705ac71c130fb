package export_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vpstudios/backlot/internal/domain/submission"
	"github.com/vpstudios/backlot/internal/export"
)

func TestCSV_Empty(t *testing.T) {
	out := export.CSV(nil)
	require.Equal(t, export.CSVHeader+"\n", out)
}

func TestCSV_Rows(t *testing.T) {
	date := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	subs := []submission.Submission{
		{
			ID:             "VP-2026-000042",
			ProjectName:    "Spring Launch",
			BrandName:      "Acme",
			PackageType:    "signature",
			Status:         submission.StatusReceived,
			SubmissionDate: date,
		},
	}

	out := export.CSV(subs)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, export.CSVHeader, lines[0])
	require.Equal(t, `VP-2026-000042,"Spring Launch","Acme","signature",received,2026-03-14T09:30:00Z`, lines[1])
}

func TestCSV_EscapesQuotes(t *testing.T) {
	subs := []submission.Submission{
		{
			ID:             "VP-2026-000007",
			ProjectName:    `He said "hi"`,
			PackageType:    "lite",
			Status:         submission.StatusDelivered,
			SubmissionDate: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
		},
	}

	out := export.CSV(subs)
	require.Contains(t, out, `"He said ""hi"""`)
}

func TestCSV_DateInUTC(t *testing.T) {
	loc := time.FixedZone("PST", -8*3600)
	subs := []submission.Submission{
		{
			ID:             "VP-2026-000001",
			ProjectName:    "Night Shoot",
			PackageType:    "immersive",
			Status:         submission.StatusInProduction,
			SubmissionDate: time.Date(2026, 6, 1, 22, 0, 0, 0, loc),
		},
	}

	out := export.CSV(subs)
	require.Contains(t, out, "2026-06-02T06:00:00Z")
}
