package usecase

import (
	"context"
	"sync"

	domainAccount "github.com/ardentik/gramblast/domains/account"
	"github.com/ardentik/gramblast/infrastructure/telegram"
)

type fakeAccountRepo struct {
	accounts []domainAccount.Account
}

func (r *fakeAccountRepo) AccountsByIDs(_ context.Context, ids []int64) ([]domainAccount.Account, error) {
	wanted := make(map[int64]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var out []domainAccount.Account
	for _, acc := range r.accounts {
		if wanted[acc.ID] {
			out = append(out, acc)
		}
	}
	return out, nil
}

func (r *fakeAccountRepo) List(_ context.Context) ([]domainAccount.Account, error) {
	return r.accounts, nil
}

type fakeConfigRepo struct {
	cfg *domainAccount.UserConfig
}

func (r *fakeConfigRepo) ConfigFor(_ context.Context, _ int64) (*domainAccount.UserConfig, error) {
	return r.cfg, nil
}

func (r *fakeConfigRepo) Save(_ context.Context, cfg domainAccount.UserConfig) error {
	r.cfg = &cfg
	return nil
}

type sentMessage struct {
	ConversationID int64
	Text           string
}

type fakeClient struct {
	conversations []telegram.Conversation
	filters       []telegram.DialogFilter
	unauthorized  bool
	connectErr    error
	sendErr       map[int64]error

	mu    sync.Mutex
	sends []sentMessage
}

func (c *fakeClient) Connect(_ context.Context) error { return c.connectErr }

func (c *fakeClient) IsAuthorized(_ context.Context) (bool, error) { return !c.unauthorized, nil }

func (c *fakeClient) Conversations(_ context.Context) ([]telegram.Conversation, error) {
	return c.conversations, nil
}

func (c *fakeClient) DialogFilters(_ context.Context) ([]telegram.DialogFilter, error) {
	return c.filters, nil
}

func (c *fakeClient) SendMessage(_ context.Context, conversationID int64, text string) error {
	c.mu.Lock()
	c.sends = append(c.sends, sentMessage{ConversationID: conversationID, Text: text})
	c.mu.Unlock()
	return c.sendErr[conversationID]
}

func (c *fakeClient) Disconnect() error { return nil }

func (c *fakeClient) sentIDs() []int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	ids := make([]int64, 0, len(c.sends))
	for _, s := range c.sends {
		ids = append(ids, s.ConversationID)
	}
	return ids
}

// fakeDialer hands out one prepared client per session store path.
type fakeDialer struct {
	clients map[string]*fakeClient
}

func (d *fakeDialer) Dial(_ context.Context, cred telegram.Credential) (telegram.Client, error) {
	return d.clients[cred.StorePath], nil
}
