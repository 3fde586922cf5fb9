package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	domainCampaign "github.com/ardentik/gramblast/domains/campaign"
	pkgError "github.com/ardentik/gramblast/pkg/error"
	"github.com/ardentik/gramblast/ui/rest/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCampaignUsecase struct {
	startErr   error
	lastUserID int64
	jobs       map[string]domainCampaign.Job
}

func (u *fakeCampaignUsecase) Start(_ context.Context, userID int64, request domainCampaign.StartRequest) (domainCampaign.StartResponse, error) {
	u.lastUserID = userID
	if u.startErr != nil {
		return domainCampaign.StartResponse{}, u.startErr
	}
	return domainCampaign.StartResponse{Status: "started", JobID: "job-1"}, nil
}

func (u *fakeCampaignUsecase) JobStatus(_ context.Context, jobID string) (domainCampaign.Job, error) {
	job, ok := u.jobs[jobID]
	if !ok {
		return domainCampaign.Job{}, pkgError.NotFoundError(fmt.Sprintf("job %s not found", jobID))
	}
	return job, nil
}

func newCampaignApp(service domainCampaign.ICampaignUsecase) *fiber.App {
	app := fiber.New()
	app.Use(middleware.Recovery())
	InitRestCampaign(app, service)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any, headers map[string]string) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestStartCampaignSuccess(t *testing.T) {
	service := &fakeCampaignUsecase{}
	app := newCampaignApp(service)

	resp := postJSON(t, app, "/campaign", domainCampaign.StartRequest{
		AccountIDs: []int64{1},
		FolderName: "Friends",
		Messages:   []string{"hola"},
		MinDelay:   10,
		MaxDelay:   15,
	}, map[string]string{"X-User-ID": "7"})

	require.Equal(t, 200, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "SUCCESS", body["code"])

	results, ok := body["results"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "started", results["status"])
	assert.Equal(t, "job-1", results["job_id"])

	assert.Equal(t, int64(7), service.lastUserID)
}

func TestStartCampaignValidationFailure(t *testing.T) {
	service := &fakeCampaignUsecase{startErr: pkgError.ValidationError("max_delay: must be no less than min_delay.")}
	app := newCampaignApp(service)

	resp := postJSON(t, app, "/campaign", domainCampaign.StartRequest{
		AccountIDs: []int64{1},
		FolderName: "Friends",
		Messages:   []string{"hola"},
		MinDelay:   15,
		MaxDelay:   10,
	}, nil)

	require.Equal(t, 400, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])
}

func TestStartCampaignMalformedBody(t *testing.T) {
	app := newCampaignApp(&fakeCampaignUsecase{})

	req := httptest.NewRequest(fiber.MethodPost, "/campaign", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestJobStatusFound(t *testing.T) {
	service := &fakeCampaignUsecase{jobs: map[string]domainCampaign.Job{
		"job-1": {ID: "job-1", Status: domainCampaign.JobCompleted},
	}}
	app := newCampaignApp(service)

	req := httptest.NewRequest(fiber.MethodGet, "/campaign/job/job-1", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	body := decodeBody(t, resp)
	results, ok := body["results"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "completed", results["status"])
}

func TestJobStatusNotFound(t *testing.T) {
	app := newCampaignApp(&fakeCampaignUsecase{})

	req := httptest.NewRequest(fiber.MethodGet, "/campaign/job/missing", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 404, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "NOT_FOUND_ERROR", body["code"])
}
