package campaign

import (
	"context"
	"errors"
)

type JobStatus string

const (
	JobRunning   JobStatus = "running"
	JobCompleted JobStatus = "completed"
	JobError     JobStatus = "error"
)

// Job is the run-time tracking record for one submitted campaign. Its status
// moves running→completed or running→error exactly once, never backwards, and
// jobs are never deleted automatically.
type Job struct {
	ID     string    `json:"job_id"`
	Status JobStatus `json:"status"`
	Detail string    `json:"detail,omitempty"`
}

var (
	// ErrJobNotFound is returned by job stores for unknown ids.
	ErrJobNotFound = errors.New("job not found")
	// ErrJobFinished is returned when a terminal job is mutated again.
	ErrJobFinished = errors.New("job already in a terminal state")
)

// IJobStore is the shared job table. Implementations must make create, read
// and status mutation safe against concurrent submission and polling.
type IJobStore interface {
	Create(ctx context.Context, job Job) error
	Get(ctx context.Context, id string) (Job, error)
	SetStatus(ctx context.Context, id string, status JobStatus, detail string) error
}

type StartRequest struct {
	AccountIDs     []int64  `json:"account_ids"`
	FolderName     string   `json:"folder_name"`
	Messages       []string `json:"messages"`
	MinDelay       int      `json:"min_delay"`
	MaxDelay       int      `json:"max_delay"`
	RandomizeChats bool     `json:"randomize_chats"`
}

type StartResponse struct {
	Status string `json:"status"`
	JobID  string `json:"job_id"`
}

type ICampaignUsecase interface {
	// Start validates the request, registers a running job, fans out one send
	// worker per account and returns without waiting for completion.
	Start(ctx context.Context, userID int64, request StartRequest) (StartResponse, error)
	JobStatus(ctx context.Context, jobID string) (Job, error)
}
