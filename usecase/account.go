package usecase

import (
	"context"

	domainAccount "github.com/ardentik/gramblast/domains/account"
	"github.com/ardentik/gramblast/validations"
)

// Defaults served when a user has no stored config yet.
const (
	defaultMinDelay       = 10
	defaultMaxDelay       = 15
	defaultRandomizeChats = true
)

type serviceAccount struct {
	accountRepo domainAccount.IAccountRepository
	configRepo  domainAccount.IUserConfigRepository
}

func NewAccountService(accountRepo domainAccount.IAccountRepository, configRepo domainAccount.IUserConfigRepository) domainAccount.IAccountUsecase {
	return &serviceAccount{
		accountRepo: accountRepo,
		configRepo:  configRepo,
	}
}

func (service *serviceAccount) Accounts(ctx context.Context) ([]domainAccount.Account, error) {
	return service.accountRepo.List(ctx)
}

func (service *serviceAccount) ConfigFor(ctx context.Context, userID int64) (domainAccount.UserConfig, error) {
	cfg, err := service.configRepo.ConfigFor(ctx, userID)
	if err != nil {
		return domainAccount.UserConfig{}, err
	}
	if cfg == nil {
		return domainAccount.UserConfig{
			UserID:         userID,
			MinDelay:       defaultMinDelay,
			MaxDelay:       defaultMaxDelay,
			RandomizeChats: defaultRandomizeChats,
		}, nil
	}
	return *cfg, nil
}

func (service *serviceAccount) SaveConfig(ctx context.Context, cfg domainAccount.UserConfig) (domainAccount.UserConfig, error) {
	if err := validations.ValidateUserConfig(ctx, cfg); err != nil {
		return domainAccount.UserConfig{}, err
	}
	if err := service.configRepo.Save(ctx, cfg); err != nil {
		return domainAccount.UserConfig{}, err
	}
	return cfg, nil
}
