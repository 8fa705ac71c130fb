package export

import (
	"github.com/vpstudios/backlot/internal/domain/submission"
)

// Filter narrows a submission collection for the admin view. Unset dimensions
// pass everything; "all" is equivalent to unset. Date is a calendar day in
// YYYY-MM-DD form compared against the submission date truncated to the UTC day.
type Filter struct {
	Status  string
	Package string
	Date    string
}

// Match reports whether a submission passes every set dimension.
func (f Filter) Match(sub submission.Submission) bool {
	if set(f.Status) && string(sub.Status) != f.Status {
		return false
	}
	if set(f.Package) && sub.PackageType != f.Package {
		return false
	}
	if set(f.Date) && sub.SubmissionDate.UTC().Format("2006-01-02") != f.Date {
		return false
	}
	return true
}

// Apply returns the submissions passing the filter, preserving input order.
func (f Filter) Apply(subs []submission.Submission) []submission.Submission {
	if !set(f.Status) && !set(f.Package) && !set(f.Date) {
		return subs
	}
	var out []submission.Submission
	for _, sub := range subs {
		if f.Match(sub) {
			out = append(out, sub)
		}
	}
	return out
}

func set(value string) bool {
	return value != "" && value != "all"
}
