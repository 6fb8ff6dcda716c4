package domain

// Application records one resume being submitted to one job. Applications
// are append-only and have no soft-delete flag.
type Application struct {
	ID       ApplicationID `json:"id"`
	ResumeID ResumeID      `json:"resume_id"`
	JobID    JobID         `json:"job_id"`
}
