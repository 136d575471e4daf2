package domain

import (
	"context"
	"errors"

	"portfolio-backend/pkg/email"
	"portfolio-backend/pkg/emailcheck"
)

var (
	// ErrInvalidEmail covers bad syntax, a negative deliverability verdict and
	// an unreachable verification service alike.
	ErrInvalidEmail = errors.New(emailcheck.InvalidReason)
	// ErrRelayUnavailable wraps a failed SMTP connectivity check
	ErrRelayUnavailable = errors.New("smtp relay unavailable")
	// ErrSendFailed wraps a failed SMTP submission
	ErrSendFailed = errors.New("smtp send failed")
)

// ContactRequest represents a contact form submission. Only Content is
// mandatory on the wire; the form gate in pkg/client asks for the rest.
type ContactRequest struct {
	Content     string `json:"content" binding:"required"`
	Prompt      string `json:"prompt"`
	SenderName  string `json:"senderName"`
	SenderEmail string `json:"senderEmail"`
	Subject     string `json:"subject"`
}

// DispatchDetails echoes what was sent
type DispatchDetails struct {
	From      string `json:"from"`
	Subject   string `json:"subject"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

// DispatchResult is produced once per successful send and never retained
type DispatchResult struct {
	MessageID string
	Details   DispatchDetails
}

// ContactResponse is the success body of POST /api/send-email
type ContactResponse struct {
	Message string          `json:"message"`
	ID      string          `json:"id"`
	Details DispatchDetails `json:"details"`
}

// DeliverabilityChecker asks a third party whether a mailbox accepts mail
type DeliverabilityChecker interface {
	Check(ctx context.Context, addr string) (emailcheck.Verdict, error)
}

// MailDispatcher submits one composed message to the relay
type MailDispatcher interface {
	Verify(ctx context.Context) error
	Send(ctx context.Context, msg *email.Message) (string, error)
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContactMessage validates, composes and sends exactly one message
	SendContactMessage(ctx context.Context, req *ContactRequest) (*DispatchResult, error)
}
