package ood

// Cluster describes one HPC cluster as reported by the clusters endpoint.
type Cluster struct {
	ID        string `json:"id"`
	Title     string `json:"title,omitempty"`
	Adapter   string `json:"adapter,omitempty"`
	LoginHost string `json:"login_host,omitempty"`
}

// Job describes one scheduler job. Fields the scheduler did not report are
// left at their zero values and rendered with a placeholder by the tools.
type Job struct {
	JobID          string `json:"job_id"`
	Cluster        string `json:"cluster,omitempty"`
	JobName        string `json:"job_name,omitempty"`
	Status         string `json:"status,omitempty"`
	JobOwner       string `json:"job_owner,omitempty"`
	QueueName      string `json:"queue_name,omitempty"`
	AccountingID   string `json:"accounting_id,omitempty"`
	SubmittedAt    string `json:"submitted_at,omitempty"`
	StartedAt      string `json:"started_at,omitempty"`
	WallclockTime  *int64 `json:"wallclock_time,omitempty"`
	WallclockLimit *int64 `json:"wallclock_limit,omitempty"`
}

// FileInfo describes one file or directory from the files endpoint.
// Size is a pointer so that "size unknown" and "size zero" stay distinct.
type FileInfo struct {
	Path       string `json:"path,omitempty"`
	Name       string `json:"name,omitempty"`
	Directory  bool   `json:"directory,omitempty"`
	Size       *int64 `json:"size,omitempty"`
	Owner      string `json:"owner,omitempty"`
	ModifiedAt string `json:"modified_at,omitempty"`
}

// DeleteInfo is the payload of a successful file deletion. Deleted must be
// true for the deletion to count as a success; the API reports false when the
// file could not be removed even though the request itself was accepted.
type DeleteInfo struct {
	Deleted bool `json:"deleted"`
}

// SubmitJobRequest is the job submission payload. Optional fields carry
// omitempty so absent values are dropped from the wire payload entirely
// rather than sent as empty strings or nulls.
type SubmitJobRequest struct {
	Cluster string     `json:"cluster"`
	Script  JobScript  `json:"script"`
	Options JobOptions `json:"options"`
}

// JobScript is the script portion of a submission. Content is always present,
// even when empty; whether an empty script is valid is the API's call.
type JobScript struct {
	Content string `json:"content"`
	Workdir string `json:"workdir,omitempty"`
}

// JobOptions carries the optional scheduler directives of a submission.
// With no options set it serializes as {}.
type JobOptions struct {
	JobName      string `json:"job_name,omitempty"`
	QueueName    string `json:"queue_name,omitempty"`
	WallTime     int64  `json:"wall_time,omitempty"`
	AccountingID string `json:"accounting_id,omitempty"`
}
