package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/ardentik/gramblast/domains/campaign"
)

// MemoryJobStore keeps the job table in process memory. One mutex covers
// create, read and status mutation so concurrent submission and polling
// never observe a torn write.
type MemoryJobStore struct {
	mu   sync.Mutex
	jobs map[string]campaign.Job
}

func NewMemoryJobStore() *MemoryJobStore {
	return &MemoryJobStore{jobs: make(map[string]campaign.Job)}
}

func (s *MemoryJobStore) Create(_ context.Context, job campaign.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.jobs[job.ID]; exists {
		return fmt.Errorf("job %s already exists", job.ID)
	}
	s.jobs[job.ID] = job
	return nil
}

func (s *MemoryJobStore) Get(_ context.Context, id string) (campaign.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok {
		return campaign.Job{}, campaign.ErrJobNotFound
	}
	return job, nil
}

// SetStatus moves a job out of running exactly once; terminal jobs stay as
// they are.
func (s *MemoryJobStore) SetStatus(_ context.Context, id string, status campaign.JobStatus, detail string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok {
		return campaign.ErrJobNotFound
	}
	if job.Status != campaign.JobRunning {
		return campaign.ErrJobFinished
	}
	job.Status = status
	job.Detail = detail
	s.jobs[id] = job
	return nil
}
