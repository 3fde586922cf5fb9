package telegram

import (
	"errors"
	"fmt"
)

// SkipReason enumerates the per-message rejections the platform reports. All
// of them skip the target and move on; a rate-limit signal is handled no
// differently from a permanent rejection.
type SkipReason string

const (
	SkipFloodWait         SkipReason = "flood_wait"
	SkipWriteForbidden    SkipReason = "write_forbidden"
	SkipPrivacyRestricted SkipReason = "privacy_restricted"
	SkipPeerInvalid       SkipReason = "peer_invalid"
	SkipChannelPrivate    SkipReason = "channel_private"
	SkipAdminRequired     SkipReason = "admin_required"
	SkipMessageTooLong    SkipReason = "message_too_long"
	SkipSlowModeWait      SkipReason = "slow_mode_wait"
	SkipRPC               SkipReason = "rpc_error"
)

// RejectedError is returned by Client.SendMessage when the platform refused
// the message for one specific target.
type RejectedError struct {
	Reason SkipReason
	Detail string
}

func (e *RejectedError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("send rejected: %s", e.Reason)
	}
	return fmt.Sprintf("send rejected: %s (%s)", e.Reason, e.Detail)
}

// OutcomeKind tags the result of one send attempt.
type OutcomeKind int

const (
	OutcomeSent OutcomeKind = iota
	OutcomeSkipped
	OutcomeFault
)

// SendOutcome is the classified result of one send attempt. Skipped and Fault
// both keep the worker loop going; nothing here ever aborts an account.
type SendOutcome struct {
	Kind   OutcomeKind
	Reason SkipReason // set for OutcomeSkipped
	Detail string     // set for OutcomeFault
}

// ClassifySend folds a SendMessage error into the tagged outcome the worker
// loop switches on.
func ClassifySend(err error) SendOutcome {
	if err == nil {
		return SendOutcome{Kind: OutcomeSent}
	}
	var rejected *RejectedError
	if errors.As(err, &rejected) {
		return SendOutcome{Kind: OutcomeSkipped, Reason: rejected.Reason}
	}
	return SendOutcome{Kind: OutcomeFault, Detail: err.Error()}
}
