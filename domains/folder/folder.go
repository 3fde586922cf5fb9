package folder

import (
	"context"

	"github.com/ardentik/gramblast/infrastructure/telegram"
)

// AllChatsFolder is the synthetic folder exposed when an account has no
// platform-side filters at all. It only exists for listing; sending against
// it is not supported.
const AllChatsFolder = "All chats"

// Target is one resolved send destination inside a folder.
type Target struct {
	ID    int64
	Label string
}

// Membership maps folder name to its ordered, deduplicated target list. Built
// fresh per resolution call, never persisted.
type Membership map[string][]Target

type IFolderUsecase interface {
	// ListByAccounts resolves every folder of every given account to its
	// human-readable labels, for UI selection.
	ListByAccounts(ctx context.Context, accountIDs []int64) (map[int64]map[string][]string, error)
	// Memberships resolves all folders of one connected account.
	Memberships(ctx context.Context, client telegram.Client) (Membership, error)
	// Targets resolves one named folder of one connected account. Unknown
	// names and accounts without filters yield an empty list, not an error.
	Targets(ctx context.Context, client telegram.Client, folderName string) ([]Target, error)
}
