package telegram

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifySend(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want SendOutcome
	}{
		{
			name: "nil error means sent",
			err:  nil,
			want: SendOutcome{Kind: OutcomeSent},
		},
		{
			name: "platform rejection skips the target",
			err:  &RejectedError{Reason: SkipFloodWait, Detail: "wait 42s"},
			want: SendOutcome{Kind: OutcomeSkipped, Reason: SkipFloodWait},
		},
		{
			name: "wrapped rejection is still a skip",
			err:  fmt.Errorf("sending: %w", &RejectedError{Reason: SkipWriteForbidden}),
			want: SendOutcome{Kind: OutcomeSkipped, Reason: SkipWriteForbidden},
		},
		{
			name: "anything else is a fault",
			err:  assert.AnError,
			want: SendOutcome{Kind: OutcomeFault, Detail: assert.AnError.Error()},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifySend(tc.err))
		})
	}
}

func TestConversationLabel(t *testing.T) {
	assert.Equal(t, "Alice", Conversation{ID: 1, Title: "Alice", Username: "alice"}.Label())
	assert.Equal(t, "alice", Conversation{ID: 1, Username: "alice"}.Label())
	assert.Equal(t, "ID 1", Conversation{ID: 1}.Label())
}
