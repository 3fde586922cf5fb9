package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	domainAccount "github.com/ardentik/gramblast/domains/account"
	domainCampaign "github.com/ardentik/gramblast/domains/campaign"
	domainFolder "github.com/ardentik/gramblast/domains/folder"
	"github.com/ardentik/gramblast/infrastructure/telegram"
	pkgError "github.com/ardentik/gramblast/pkg/error"
	"github.com/ardentik/gramblast/validations"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// sendPlan is the effective campaign parameters after the per-user stored
// config (when present) has overridden the request values.
type sendPlan struct {
	folderName string
	messages   []string
	minDelay   int
	maxDelay   int
	shuffle    bool
}

type serviceCampaign struct {
	accountRepo domainAccount.IAccountRepository
	configRepo  domainAccount.IUserConfigRepository
	folders     domainFolder.IFolderUsecase
	dialer      telegram.Dialer
	jobs        domainCampaign.IJobStore

	// Swapped out in tests.
	sleep     func(d time.Duration)
	delayFor  func(minDelay, maxDelay int) int
	pickIndex func(n int) int
}

func NewCampaignService(
	accountRepo domainAccount.IAccountRepository,
	configRepo domainAccount.IUserConfigRepository,
	folders domainFolder.IFolderUsecase,
	dialer telegram.Dialer,
	jobs domainCampaign.IJobStore,
) domainCampaign.ICampaignUsecase {
	return &serviceCampaign{
		accountRepo: accountRepo,
		configRepo:  configRepo,
		folders:     folders,
		dialer:      dialer,
		jobs:        jobs,
		sleep:       time.Sleep,
		delayFor: func(minDelay, maxDelay int) int {
			return minDelay + rand.Intn(maxDelay-minDelay+1)
		},
		pickIndex: rand.Intn,
	}
}

// Start validates the campaign, registers a running job and fans out one send
// worker per account. It returns as soon as the job is registered; progress
// is observable only through JobStatus.
func (service *serviceCampaign) Start(ctx context.Context, userID int64, request domainCampaign.StartRequest) (response domainCampaign.StartResponse, err error) {
	if err = validations.ValidateStartCampaign(ctx, request); err != nil {
		return response, err
	}

	accounts, err := service.accountRepo.AccountsByIDs(ctx, request.AccountIDs)
	if err != nil {
		return response, err
	}
	if len(accounts) == 0 {
		return response, pkgError.NotFoundError("no matching accounts")
	}

	plan := sendPlan{
		folderName: request.FolderName,
		messages:   request.Messages,
		minDelay:   request.MinDelay,
		maxDelay:   request.MaxDelay,
		shuffle:    request.RandomizeChats,
	}

	// A stored per-user config overrides the request values for this user's
	// accounts; the request only acts as a fallback.
	cfg, err := service.configRepo.ConfigFor(ctx, userID)
	if err != nil {
		return response, err
	}
	if cfg != nil {
		plan.minDelay = cfg.MinDelay
		plan.maxDelay = cfg.MaxDelay
		plan.shuffle = cfg.RandomizeChats
	}
	if err = validations.ValidateDelayBounds(plan.minDelay, plan.maxDelay); err != nil {
		return response, err
	}

	job := domainCampaign.Job{ID: uuid.NewString(), Status: domainCampaign.JobRunning}
	if err = service.jobs.Create(ctx, job); err != nil {
		return response, err
	}

	logrus.WithFields(logrus.Fields{
		"job_id":   job.ID,
		"accounts": len(accounts),
		"folder":   plan.folderName,
	}).Info("[CAMPAIGN] campaign started")

	go service.run(job.ID, accounts, plan)

	return domainCampaign.StartResponse{Status: "started", JobID: job.ID}, nil
}

func (service *serviceCampaign) JobStatus(ctx context.Context, jobID string) (domainCampaign.Job, error) {
	job, err := service.jobs.Get(ctx, jobID)
	if errors.Is(err, domainCampaign.ErrJobNotFound) {
		return domainCampaign.Job{}, pkgError.NotFoundError(fmt.Sprintf("job %s not found", jobID))
	}
	return job, err
}

// run fans out one worker per account and joins them all. Individual send
// failures never reach here; only a fault in the orchestration itself moves
// the job to error.
func (service *serviceCampaign) run(jobID string, accounts []domainAccount.Account, plan sendPlan) {
	ctx := context.Background()

	var mu sync.Mutex
	var fanoutFault string

	var wg sync.WaitGroup
	for _, acc := range accounts {
		wg.Add(1)
		go func(acc domainAccount.Account) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					mu.Lock()
					fanoutFault = fmt.Sprintf("worker for %s: %v", acc.Phone, r)
					mu.Unlock()
					logrus.WithField("job_id", jobID).Errorf("[CAMPAIGN] worker panic: %v", r)
				}
			}()
			service.sendForAccount(ctx, jobID, acc, plan)
		}(acc)
	}
	wg.Wait()

	if fanoutFault != "" {
		if err := service.jobs.SetStatus(ctx, jobID, domainCampaign.JobError, fanoutFault); err != nil {
			logrus.WithError(err).WithField("job_id", jobID).Error("[CAMPAIGN] failed to record job fault")
		}
		return
	}
	if err := service.jobs.SetStatus(ctx, jobID, domainCampaign.JobCompleted, ""); err != nil {
		logrus.WithError(err).WithField("job_id", jobID).Error("[CAMPAIGN] failed to complete job")
		return
	}
	logrus.WithField("job_id", jobID).Info("[CAMPAIGN] campaign completed")
}

// sendForAccount is one account's whole send loop: connect under the session
// guard, resolve the folder, then contact each target in order with a random
// message and a random delay. Per-message outcomes are logged and never abort
// the loop; connection-level failures end this account quietly without
// touching the job status.
func (service *serviceCampaign) sendForAccount(ctx context.Context, jobID string, acc domainAccount.Account, plan sendPlan) {
	log := logrus.WithFields(logrus.Fields{
		"job_id": jobID,
		"phone":  acc.Phone,
	})
	cred := telegram.Credential{StorePath: acc.StorePath, StringBlob: acc.StringBlob}

	err := telegram.WithSessionLock(acc.StorePath, func() error {
		client, err := service.dialer.Dial(ctx, cred)
		if err != nil {
			return err
		}
		if err := client.Connect(ctx); err != nil {
			return err
		}
		defer func() {
			_ = client.Disconnect()
		}()

		authorized, err := client.IsAuthorized(ctx)
		if err != nil {
			return err
		}
		if !authorized {
			log.Warn("[CAMPAIGN] account lost authorization, contributing no sends")
			return nil
		}

		targets, err := service.folders.Targets(ctx, client, plan.folderName)
		if err != nil {
			return err
		}
		if len(targets) == 0 {
			log.Info("[CAMPAIGN] folder resolved no targets")
			return nil
		}
		if plan.shuffle {
			rand.Shuffle(len(targets), func(i, j int) {
				targets[i], targets[j] = targets[j], targets[i]
			})
		}

		log.WithField("targets", len(targets)).Info("[CAMPAIGN] account send loop started")

		for _, target := range targets {
			text := plan.messages[service.pickIndex(len(plan.messages))]
			outcome := telegram.ClassifySend(client.SendMessage(ctx, target.ID, text))
			switch outcome.Kind {
			case telegram.OutcomeSent:
				log.WithField("target", target.Label).Debug("[CAMPAIGN] message sent")
			case telegram.OutcomeSkipped:
				log.WithFields(logrus.Fields{
					"target": target.Label,
					"reason": outcome.Reason,
				}).Warn("[CAMPAIGN] target skipped")
			case telegram.OutcomeFault:
				log.WithFields(logrus.Fields{
					"target": target.Label,
					"detail": outcome.Detail,
				}).Error("[CAMPAIGN] send fault, continuing")
			}

			service.sleep(time.Duration(service.delayFor(plan.minDelay, plan.maxDelay)) * time.Second)
		}

		log.Info("[CAMPAIGN] account send loop finished")
		return nil
	})
	if err != nil {
		log.WithError(err).Error("[CAMPAIGN] account send loop ended early")
	}
}
