package service

import (
	"context"
	"errors"

	"github.com/misionantigua/backend/internal/model"
)

// ErrNotifyFailed reports that a submission was stored but one of the
// confirmation emails could not be delivered. The row is kept; callers
// map this to a server error without rolling anything back.
var ErrNotifyFailed = errors.New("notification failed")

// TestSendInfo echoes what the relay was asked to deliver for a test
// email, returned to the caller as delivery metadata.
type TestSendInfo struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
}

// ContactService defines the business logic for contact submissions.
type ContactService interface {
	// Submit persists a validated contact (populating ID/CreatedAt) and
	// then sends the receipt and admin-alert emails. A storage failure
	// aborts before any mail is attempted; a mail failure is returned
	// wrapped in ErrNotifyFailed with the row left in place.
	Submit(ctx context.Context, c *model.Contact) error

	// List returns all submissions, newest first.
	List(ctx context.Context) ([]*model.Contact, error)

	// SendTest sends one email to an arbitrary recipient without
	// touching storage. Empty subject and body fall back to defaults.
	SendTest(ctx context.Context, to, subject, body string) (*TestSendInfo, error)
}
