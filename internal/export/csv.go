// Package export renders submission collections for the admin dashboard:
// conjunctive filtering plus CSV serialization. Everything here is pure; the
// caller owns ordering and I/O.
package export

import (
	"strings"
	"time"

	"github.com/vpstudios/backlot/internal/domain/submission"
)

// CSVHeader is the fixed header row of a submissions export.
const CSVHeader = "Submission ID,Project Name,Brand,Package,Status,Submission Date"

// CSV renders submissions as a CSV document with the fixed header. Text fields
// are double-quote-escaped and rows follow the input order, so callers pass
// collections already sorted newest-first. An empty collection yields just the
// header row.
func CSV(subs []submission.Submission) string {
	var b strings.Builder
	b.WriteString(CSVHeader)
	b.WriteByte('\n')

	for _, sub := range subs {
		b.WriteString(sub.ID)
		b.WriteByte(',')
		b.WriteString(quote(sub.ProjectName))
		b.WriteByte(',')
		b.WriteString(quote(sub.BrandName))
		b.WriteByte(',')
		b.WriteString(quote(sub.PackageType))
		b.WriteByte(',')
		b.WriteString(string(sub.Status))
		b.WriteByte(',')
		b.WriteString(sub.SubmissionDate.UTC().Format(time.RFC3339))
		b.WriteByte('\n')
	}

	return b.String()
}

// quote wraps a value in double quotes, doubling embedded quotes.
func quote(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}
