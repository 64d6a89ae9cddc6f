package domain

import "time"

type ApplicationStatus string

const (
	ApplicationStatusSubmitted ApplicationStatus = "submitted"
	ApplicationStatusAccepted  ApplicationStatus = "accepted"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
)

// IsTerminal reports whether no further transition is allowed.
func (s ApplicationStatus) IsTerminal() bool {
	return s == ApplicationStatusAccepted || s == ApplicationStatusRejected
}

// IsOutcome reports whether s is a valid decision for a submitted application.
func (s ApplicationStatus) IsOutcome() bool {
	return s.IsTerminal()
}

type JobApplication struct {
	ID              int32             `json:"id"`
	JobID           int32             `json:"job_id"`
	ApplicantID     string            `json:"applicant_id"`
	Status          ApplicationStatus `json:"status"`
	CoverLetter     string            `json:"cover_letter,omitempty"`
	ResumeReference string            `json:"resume_reference,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// ApplicationSummary is what an applicant sees in their own list.
type ApplicationSummary struct {
	JobApplication
	JobTitle string `json:"job_title"`
	Company  string `json:"company"`
}

// ApplicationDetail is what a posting owner or admin sees for each applicant.
type ApplicationDetail struct {
	JobApplication
	ApplicantName string      `json:"applicant_name"`
	ApplicantType AccountType `json:"applicant_type"`
}
