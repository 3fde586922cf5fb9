package account

import "context"

// Account is one authorized platform account. Exactly one of StorePath
// (exclusive local session store) and StringBlob (portable session) is set.
// Accounts are immutable once authorized; removal is handled elsewhere.
type Account struct {
	ID         int64  `json:"id"`
	Phone      string `json:"phone"`
	StorePath  string `json:"-"`
	StringBlob string `json:"-"`
	UserID     int64  `json:"user_id,omitempty"`
}

// UserConfig is the per-user delay/shuffle record. When present it overrides
// the values supplied in a campaign request for that user's accounts.
type UserConfig struct {
	UserID         int64 `json:"-"`
	MinDelay       int   `json:"min_delay"`
	MaxDelay       int   `json:"max_delay"`
	RandomizeChats bool  `json:"randomize_chats"`
}

type IAccountRepository interface {
	AccountsByIDs(ctx context.Context, ids []int64) ([]Account, error)
	List(ctx context.Context) ([]Account, error)
}

type IUserConfigRepository interface {
	// ConfigFor returns nil (no error) when the user has no stored record.
	ConfigFor(ctx context.Context, userID int64) (*UserConfig, error)
	Save(ctx context.Context, cfg UserConfig) error
}

type IAccountUsecase interface {
	Accounts(ctx context.Context) ([]Account, error)
	ConfigFor(ctx context.Context, userID int64) (UserConfig, error)
	SaveConfig(ctx context.Context, cfg UserConfig) (UserConfig, error)
}
