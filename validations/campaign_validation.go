package validations

import (
	"context"

	domainAccount "github.com/ardentik/gramblast/domains/account"
	domainCampaign "github.com/ardentik/gramblast/domains/campaign"
	pkgError "github.com/ardentik/gramblast/pkg/error"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ValidateStartCampaign rejects malformed campaign requests before any side
// effect: no job is registered and no worker starts for invalid input.
func ValidateStartCampaign(ctx context.Context, request domainCampaign.StartRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.AccountIDs, validation.Required),
		validation.Field(&request.FolderName, validation.Required, validation.Length(1, 128)),
		validation.Field(&request.Messages, validation.Required, validation.Each(validation.Required)),
		validation.Field(&request.MinDelay, validation.Required, validation.Min(1), validation.Max(3600)),
		validation.Field(&request.MaxDelay, validation.Required, validation.Min(1), validation.Max(3600)),
	)
	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	if request.MaxDelay < request.MinDelay {
		return pkgError.ValidationError("max_delay: must be no less than min_delay.")
	}

	return nil
}

// ValidateDelayBounds re-checks the effective delays after a stored user
// config has overridden the request values.
func ValidateDelayBounds(minDelay, maxDelay int) error {
	if minDelay < 1 || maxDelay < 1 {
		return pkgError.ValidationError("delays must be at least 1 second")
	}
	if maxDelay < minDelay {
		return pkgError.ValidationError("max_delay: must be no less than min_delay.")
	}
	return nil
}

// ValidateUserConfig guards the PUT /config payload.
func ValidateUserConfig(ctx context.Context, cfg domainAccount.UserConfig) error {
	err := validation.ValidateStructWithContext(ctx, &cfg,
		validation.Field(&cfg.MinDelay, validation.Required, validation.Min(1), validation.Max(3600)),
		validation.Field(&cfg.MaxDelay, validation.Required, validation.Min(1), validation.Max(3600)),
	)
	if err != nil {
		return pkgError.ValidationError(err.Error())
	}
	if cfg.MaxDelay < cfg.MinDelay {
		return pkgError.ValidationError("max_delay: must be no less than min_delay.")
	}
	return nil
}
