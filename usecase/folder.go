package usecase

import (
	"context"

	domainAccount "github.com/ardentik/gramblast/domains/account"
	domainFolder "github.com/ardentik/gramblast/domains/folder"
	"github.com/ardentik/gramblast/infrastructure/telegram"
	"github.com/sirupsen/logrus"
)

type serviceFolder struct {
	accountRepo domainAccount.IAccountRepository
	dialer      telegram.Dialer
}

func NewFolderService(accountRepo domainAccount.IAccountRepository, dialer telegram.Dialer) domainFolder.IFolderUsecase {
	return &serviceFolder{
		accountRepo: accountRepo,
		dialer:      dialer,
	}
}

// ListByAccounts connects every requested account in turn and maps its
// folders to display labels. Accounts that fail to connect or lost their
// authorization contribute an empty folder map instead of failing the call.
func (service *serviceFolder) ListByAccounts(ctx context.Context, accountIDs []int64) (map[int64]map[string][]string, error) {
	accounts, err := service.accountRepo.AccountsByIDs(ctx, accountIDs)
	if err != nil {
		return nil, err
	}

	result := make(map[int64]map[string][]string, len(accounts))
	for _, acc := range accounts {
		labels := make(map[string][]string)
		result[acc.ID] = labels

		log := logrus.WithField("phone", acc.Phone)
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
				log.Warn("[FOLDER] account lost authorization, listing nothing")
				return nil
			}

			membership, err := service.Memberships(ctx, client)
			if err != nil {
				return err
			}
			for name, targets := range membership {
				names := make([]string, 0, len(targets))
				for _, t := range targets {
					names = append(names, t.Label)
				}
				labels[name] = names
			}
			return nil
		})
		if err != nil {
			log.WithError(err).Warn("[FOLDER] failed to list folders for account")
		}
	}

	return result, nil
}

// Memberships resolves every user-defined filter of a connected account. When
// the account has no filters at all, a single synthetic folder holding every
// conversation is returned so the UI still has something to offer.
func (service *serviceFolder) Memberships(ctx context.Context, client telegram.Client) (domainFolder.Membership, error) {
	conversations, err := client.Conversations(ctx)
	if err != nil {
		return nil, err
	}
	byID := conversationLookup(conversations)

	membership := make(domainFolder.Membership)
	filters, err := client.DialogFilters(ctx)
	if err != nil {
		// Filter retrieval failing is treated the same as having none.
		logrus.WithError(err).Debug("[FOLDER] dialog filter fetch failed, falling back")
		filters = nil
	}

	for _, f := range filters {
		if f.Default {
			continue
		}
		membership[f.Title] = resolveFilter(f, conversations, byID)
	}

	if len(membership) == 0 && len(conversations) > 0 {
		all := make([]domainFolder.Target, 0, len(conversations))
		for _, conv := range conversations {
			all = append(all, domainFolder.Target{ID: conv.ID, Label: conv.Label()})
		}
		membership[domainFolder.AllChatsFolder] = all
	}

	return membership, nil
}

// Targets resolves one named folder for sending. No filters, or no filter
// with a matching title, means nobody to contact: an empty list, not an
// error.
func (service *serviceFolder) Targets(ctx context.Context, client telegram.Client, folderName string) ([]domainFolder.Target, error) {
	conversations, err := client.Conversations(ctx)
	if err != nil {
		return nil, err
	}
	byID := conversationLookup(conversations)

	filters, err := client.DialogFilters(ctx)
	if err != nil {
		logrus.WithError(err).Debug("[FOLDER] dialog filter fetch failed, resolving no targets")
		return nil, nil
	}

	for _, f := range filters {
		if f.Default || f.Title != folderName {
			continue
		}
		return resolveFilter(f, conversations, byID), nil
	}
	return nil, nil
}

func conversationLookup(conversations []telegram.Conversation) map[int64]telegram.Conversation {
	byID := make(map[int64]telegram.Conversation, len(conversations))
	for _, conv := range conversations {
		byID[conv.ID] = conv
	}
	return byID
}

// resolveFilter builds one folder's ordered target list. The explicit include
// list wins over the classification sweep, and within the sweep the flag
// order is fixed: bots, broadcast channels, groups/megagroups, then for user
// conversations contacts and non-contacts. First match adds the conversation;
// duplicates are impossible because additions are tracked by id.
func resolveFilter(f telegram.DialogFilter, conversations []telegram.Conversation, byID map[int64]telegram.Conversation) []domainFolder.Target {
	targets := make([]domainFolder.Target, 0, len(f.IncludeIDs))
	added := make(map[int64]bool, len(f.IncludeIDs))

	for _, id := range f.IncludeIDs {
		conv, live := byID[id]
		if !live || added[id] {
			continue
		}
		targets = append(targets, domainFolder.Target{ID: conv.ID, Label: conv.Label()})
		added[id] = true
	}

	for _, conv := range conversations {
		if added[conv.ID] {
			continue
		}
		if !matchesFilterFlags(f, conv) {
			continue
		}
		targets = append(targets, domainFolder.Target{ID: conv.ID, Label: conv.Label()})
		added[conv.ID] = true
	}

	return targets
}

func matchesFilterFlags(f telegram.DialogFilter, conv telegram.Conversation) bool {
	switch {
	case f.Bots && conv.Kind == telegram.KindUser && conv.Bot:
		return true
	case f.Broadcasts && conv.Kind == telegram.KindChannel && !conv.Megagroup:
		return true
	case f.Groups && (conv.Kind == telegram.KindGroup || (conv.Kind == telegram.KindChannel && conv.Megagroup)):
		return true
	case conv.Kind == telegram.KindUser && f.Contacts && conv.Contact:
		return true
	case conv.Kind == telegram.KindUser && f.NonContacts && !conv.Contact:
		return true
	}
	return false
}
