package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/email"
	"portfolio-backend/pkg/emailcheck"
	"portfolio-backend/pkg/logger"
	"portfolio-backend/pkg/metrics"
)

const (
	fallbackSubjectPrefix = "AI Generated Email: "
	fallbackSubjectRunes  = 50
	fallbackFromName      = "AI Email Generator"
)

type contactUsecase struct {
	checker    domain.DeliverabilityChecker
	dispatcher domain.MailDispatcher
	mailbox    string
	now        func() time.Time
}

// NewContactUsecase creates a new contact usecase. mailbox is the service
// address every message is sent from and to.
func NewContactUsecase(checker domain.DeliverabilityChecker, dispatcher domain.MailDispatcher, mailbox string) domain.ContactUsecase {
	return &contactUsecase{
		checker:    checker,
		dispatcher: dispatcher,
		mailbox:    mailbox,
		now:        time.Now,
	}
}

// SendContactMessage runs the submission pipeline in order, stopping at the
// first failure: sender verification, relay check, composition, one send.
func (uc *contactUsecase) SendContactMessage(ctx context.Context, req *domain.ContactRequest) (*domain.DispatchResult, error) {
	// Any non-empty value counts as a sender and must pass as given
	senderEmail := req.SenderEmail
	senderName := strings.TrimSpace(req.SenderName)

	if senderEmail != "" {
		if err := uc.verifySender(ctx, senderEmail); err != nil {
			metrics.ContactSubmissionsTotal.WithLabelValues("invalid_email").Inc()
			return nil, err
		}
	}

	start := time.Now()
	defer func() { metrics.SMTPDispatchDuration.Observe(time.Since(start).Seconds()) }()

	if err := uc.dispatcher.Verify(ctx); err != nil {
		logger.Log.Error("SMTP relay verification failed", "error", err)
		metrics.ContactSubmissionsTotal.WithLabelValues("smtp_unavailable").Inc()
		return nil, fmt.Errorf("%w: %w", domain.ErrRelayUnavailable, err)
	}

	subject := composeSubject(req.Subject, req.Prompt, req.Content)
	fromName := composeFromName(senderName, senderEmail)

	html, err := email.RenderContactHTML(email.ContactEmailData{
		SenderName:  senderName,
		SenderEmail: senderEmail,
		Subject:     subject,
		Prompt:      req.Prompt,
		Content:     req.Content,
	})
	if err != nil {
		metrics.ContactSubmissionsTotal.WithLabelValues("failed").Inc()
		return nil, fmt.Errorf("%w: %w", domain.ErrSendFailed, err)
	}

	messageID, err := uc.dispatcher.Send(ctx, &email.Message{
		FromName: fromName,
		ReplyTo:  senderEmail,
		Subject:  subject,
		Text:     req.Content,
		HTML:     html,
	})
	if err != nil {
		logger.Log.Error("Failed to send contact email", "error", err)
		metrics.ContactSubmissionsTotal.WithLabelValues("failed").Inc()
		return nil, fmt.Errorf("%w: %w", domain.ErrSendFailed, err)
	}

	metrics.ContactSubmissionsTotal.WithLabelValues("sent").Inc()
	logger.Log.Info("Contact email sent", "message_id", messageID, "has_sender", senderEmail != "")

	return &domain.DispatchResult{
		MessageID: messageID,
		Details: domain.DispatchDetails{
			From:      fmt.Sprintf("%q <%s>", fromName, uc.mailbox),
			Subject:   subject,
			Content:   req.Content,
			Timestamp: uc.now().UTC().Format("2006-01-02T15:04:05.000Z"),
		},
	}, nil
}

func (uc *contactUsecase) verifySender(ctx context.Context, addr string) error {
	if !emailcheck.ValidFormat(addr) {
		return domain.ErrInvalidEmail
	}

	verdict, err := uc.checker.Check(ctx, addr)
	if err != nil {
		logger.Log.Warn("Deliverability check failed", "error", err)
		metrics.EmailVerificationsTotal.WithLabelValues("error").Inc()
		return domain.ErrInvalidEmail
	}
	if !verdict.IsValid() {
		metrics.EmailVerificationsTotal.WithLabelValues("invalid").Inc()
		return domain.ErrInvalidEmail
	}
	metrics.EmailVerificationsTotal.WithLabelValues("valid").Inc()
	return nil
}

// composeSubject prefers the caller's subject, else derives one from the
// first 50 characters of the prompt (or the content when there is no prompt).
func composeSubject(subject, prompt, content string) string {
	if s := strings.TrimSpace(subject); s != "" {
		return s
	}
	source := prompt
	if strings.TrimSpace(source) == "" {
		source = content
	}
	runes := []rune(source)
	if len(runes) > fallbackSubjectRunes {
		runes = runes[:fallbackSubjectRunes]
	}
	return fallbackSubjectPrefix + string(runes) + "..."
}

// composeFromName picks the display name only; the address is always the mailbox
func composeFromName(senderName, senderEmail string) string {
	switch {
	case senderEmail == "":
		return fallbackFromName
	case senderName != "":
		return senderName
	default:
		return senderEmail
	}
}
