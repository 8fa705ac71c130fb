package submission

import "time"

// FileMeta describes an uploaded file reference. Binary content lives with the
// external storage collaborator; only metadata is kept here.
type FileMeta struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
	Type string `json:"type"`
}

// Submission represents a production request tracked through its lifecycle.
type Submission struct {
	ID              string     `json:"id"`
	ProjectName     string     `json:"projectName"`
	BrandName       string     `json:"brandName,omitempty"`
	ProjectGoals    string     `json:"projectGoals"`
	PackageType     string     `json:"packageType"`
	Timeline        string     `json:"timeline,omitempty"`
	AdditionalNotes string     `json:"additionalNotes,omitempty"`
	Files           []FileMeta `json:"files,omitempty"`
	Status          Status     `json:"status"`
	SubmissionDate  time.Time  `json:"submissionDate"`
}

// Input holds the client-supplied fields of a submission. ID, status and
// submission date are assigned by the server at create time.
type Input struct {
	ProjectName     string
	BrandName       string
	ProjectGoals    string
	PackageType     string
	Timeline        string
	AdditionalNotes string
	Files           []FileMeta
}
