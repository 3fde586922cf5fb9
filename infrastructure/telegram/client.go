package telegram

import (
	"context"
	"fmt"
)

// ConversationKind mirrors the three peer families the platform exposes.
type ConversationKind string

const (
	KindUser    ConversationKind = "user"
	KindGroup   ConversationKind = "group"
	KindChannel ConversationKind = "channel"
)

// Conversation is one live dialog of an account: a chat, channel or private
// conversation addressable by a stable identifier.
type Conversation struct {
	ID        int64
	Title     string
	Username  string
	Kind      ConversationKind
	Bot       bool // users only
	Contact   bool // users only
	Megagroup bool // channels only: supergroup rather than broadcast
}

// Label returns the human-readable name used when listing folder contents.
func (c Conversation) Label() string {
	if c.Title != "" {
		return c.Title
	}
	if c.Username != "" {
		return c.Username
	}
	return fmt.Sprintf("ID %d", c.ID)
}

// DialogFilter is a platform-side folder definition: an explicit include list
// plus category flags for everything else. The default/catch-all filter does
// not represent a user-defined folder and is skipped by the resolver.
type DialogFilter struct {
	ID          int32
	Title       string
	Default     bool
	IncludeIDs  []int64
	Bots        bool
	Broadcasts  bool
	Groups      bool
	Contacts    bool
	NonContacts bool
}

// Credential references one authorized account session. Exactly one of
// StorePath (exclusive file-backed session store) and StringBlob (portable
// self-contained session) is populated.
type Credential struct {
	StorePath  string
	StringBlob string
}

// Exclusive reports whether the credential is backed by a single-writer local
// store and therefore needs the session guard.
func (c Credential) Exclusive() bool {
	return c.StorePath != ""
}

// Client is one connected account handle. Implementations wrap the actual
// MTProto transport; the engine only depends on this surface.
type Client interface {
	Connect(ctx context.Context) error
	IsAuthorized(ctx context.Context) (bool, error)
	Conversations(ctx context.Context) ([]Conversation, error)
	DialogFilters(ctx context.Context) ([]DialogFilter, error)
	SendMessage(ctx context.Context, conversationID int64, text string) error
	Disconnect() error
}

// Dialer builds a Client for a credential. Dial must not connect; Connect is
// called separately so the session guard can cover the whole connect-use-
// disconnect span.
type Dialer interface {
	Dial(ctx context.Context, cred Credential) (Client, error)
}

// DialerFunc adapts a plain function to the Dialer interface.
type DialerFunc func(ctx context.Context, cred Credential) (Client, error)

func (f DialerFunc) Dial(ctx context.Context, cred Credential) (Client, error) {
	return f(ctx, cred)
}
