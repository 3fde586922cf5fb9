package repository

import (
	"context"
	"encoding/json"
	"fmt"

	valkeylib "github.com/valkey-io/valkey-go"

	"github.com/ardentik/gramblast/domains/campaign"
	"github.com/ardentik/gramblast/infrastructure/valkey"
)

// ValkeyJobStore keeps the job table in Valkey so several gramblast nodes can
// answer status queries for each other's jobs. Jobs are stored without TTL;
// garbage collection is an operator concern, matching the in-memory store.
// Each job has a single mutating owner (its own worker set), so a plain
// get-then-set is enough for the status transition.
type ValkeyJobStore struct {
	client *valkey.Client
}

func NewValkeyJobStore(client *valkey.Client) *ValkeyJobStore {
	return &ValkeyJobStore{client: client}
}

func (s *ValkeyJobStore) key(id string) string {
	return s.client.Key("job", id)
}

func (s *ValkeyJobStore) inner() valkeylib.Client {
	return s.client.Inner()
}

func (s *ValkeyJobStore) Create(ctx context.Context, job campaign.Job) error {
	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}

	cmd := s.inner().B().Set().Key(s.key(job.ID)).Value(string(data)).Nx().Build()
	if err := s.inner().Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

func (s *ValkeyJobStore) Get(ctx context.Context, id string) (campaign.Job, error) {
	cmd := s.inner().B().Get().Key(s.key(id)).Build()

	data, err := s.inner().Do(ctx, cmd).AsBytes()
	if err != nil {
		if valkeylib.IsValkeyNil(err) {
			return campaign.Job{}, campaign.ErrJobNotFound
		}
		return campaign.Job{}, fmt.Errorf("failed to get job: %w", err)
	}

	var job campaign.Job
	if err := json.Unmarshal(data, &job); err != nil {
		return campaign.Job{}, fmt.Errorf("failed to unmarshal job: %w", err)
	}
	return job, nil
}

func (s *ValkeyJobStore) SetStatus(ctx context.Context, id string, status campaign.JobStatus, detail string) error {
	job, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if job.Status != campaign.JobRunning {
		return campaign.ErrJobFinished
	}

	job.Status = status
	job.Detail = detail
	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}

	cmd := s.inner().B().Set().Key(s.key(id)).Value(string(data)).Xx().Build()
	if err := s.inner().Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}
	return nil
}
