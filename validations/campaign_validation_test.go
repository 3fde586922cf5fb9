package validations

import (
	"context"
	"strings"
	"testing"

	domainAccount "github.com/ardentik/gramblast/domains/account"
	domainCampaign "github.com/ardentik/gramblast/domains/campaign"
	pkgError "github.com/ardentik/gramblast/pkg/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() domainCampaign.StartRequest {
	return domainCampaign.StartRequest{
		AccountIDs: []int64{1, 2},
		FolderName: "Friends",
		Messages:   []string{"hola", "buenas"},
		MinDelay:   10,
		MaxDelay:   15,
	}
}

func TestValidateStartCampaign(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *domainCampaign.StartRequest)
		wantErr bool
	}{
		{
			name:   "valid request",
			mutate: func(r *domainCampaign.StartRequest) {},
		},
		{
			name:    "missing accounts",
			mutate:  func(r *domainCampaign.StartRequest) { r.AccountIDs = nil },
			wantErr: true,
		},
		{
			name:    "missing folder name",
			mutate:  func(r *domainCampaign.StartRequest) { r.FolderName = "" },
			wantErr: true,
		},
		{
			name:    "folder name too long",
			mutate:  func(r *domainCampaign.StartRequest) { r.FolderName = strings.Repeat("x", 129) },
			wantErr: true,
		},
		{
			name:    "missing messages",
			mutate:  func(r *domainCampaign.StartRequest) { r.Messages = nil },
			wantErr: true,
		},
		{
			name:    "empty message in list",
			mutate:  func(r *domainCampaign.StartRequest) { r.Messages = []string{"hola", ""} },
			wantErr: true,
		},
		{
			name:    "zero min delay",
			mutate:  func(r *domainCampaign.StartRequest) { r.MinDelay = 0 },
			wantErr: true,
		},
		{
			name:    "max delay over the cap",
			mutate:  func(r *domainCampaign.StartRequest) { r.MaxDelay = 3601 },
			wantErr: true,
		},
		{
			name: "max below min",
			mutate: func(r *domainCampaign.StartRequest) {
				r.MinDelay = 20
				r.MaxDelay = 10
			},
			wantErr: true,
		},
		{
			name: "equal delays are fine",
			mutate: func(r *domainCampaign.StartRequest) {
				r.MinDelay = 5
				r.MaxDelay = 5
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			request := validRequest()
			tc.mutate(&request)

			err := ValidateStartCampaign(context.Background(), request)
			if !tc.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			var validationErr pkgError.ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestValidateDelayBounds(t *testing.T) {
	assert.NoError(t, ValidateDelayBounds(1, 1))
	assert.NoError(t, ValidateDelayBounds(10, 15))
	assert.Error(t, ValidateDelayBounds(0, 5))
	assert.Error(t, ValidateDelayBounds(5, 0))
	assert.Error(t, ValidateDelayBounds(15, 10))
}

func TestValidateUserConfig(t *testing.T) {
	assert.NoError(t, ValidateUserConfig(context.Background(), domainAccount.UserConfig{MinDelay: 10, MaxDelay: 15}))
	assert.Error(t, ValidateUserConfig(context.Background(), domainAccount.UserConfig{MinDelay: 0, MaxDelay: 15}))
	assert.Error(t, ValidateUserConfig(context.Background(), domainAccount.UserConfig{MinDelay: 15, MaxDelay: 10}))
	assert.Error(t, ValidateUserConfig(context.Background(), domainAccount.UserConfig{MinDelay: 10, MaxDelay: 4000}))
}
