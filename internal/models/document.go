package models

import "time"

// DocumentJobStatus tracks a bulk document job.
type DocumentJobStatus string

const (
	DocumentJobQueued     DocumentJobStatus = "queued"
	DocumentJobProcessing DocumentJobStatus = "processing"
	DocumentJobFinished   DocumentJobStatus = "finished"
	DocumentJobFailed     DocumentJobStatus = "failed"
)

// DocumentJob is a queued bulk document generation, e.g. ID cards.
type DocumentJob struct {
	ID          string            `json:"id"`
	Kind        string            `json:"kind"`
	DNIs        []string          `json:"dnis"`
	Status      DocumentJobStatus `json:"status"`
	Error       string            `json:"error,omitempty"`
	DownloadURL string            `json:"downloadUrl,omitempty"`
	ExpiresAt   *time.Time        `json:"expiresAt,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	FinishedAt  *time.Time        `json:"finishedAt,omitempty"`
}
