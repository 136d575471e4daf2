package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/email"
	"portfolio-backend/pkg/emailcheck"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock collaborators
type MockChecker struct {
	mock.Mock
}

func (m *MockChecker) Check(ctx context.Context, addr string) (emailcheck.Verdict, error) {
	args := m.Called(ctx, addr)
	return args.Get(0).(emailcheck.Verdict), args.Error(1)
}

type MockDispatcher struct {
	mock.Mock
	sent int
}

func (m *MockDispatcher) Verify(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockDispatcher) Send(ctx context.Context, msg *email.Message) (string, error) {
	args := m.Called(ctx, msg)
	m.sent++
	return args.String(0), args.Error(1)
}

const mailbox = "me@portfolio.example"

func validRequest() *domain.ContactRequest {
	return &domain.ContactRequest{
		Content:     "hello",
		SenderName:  "Ann",
		SenderEmail: "ann@example.com",
		Subject:     "Hi",
	}
}

func TestContactHappyPath(t *testing.T) {
	checker := new(MockChecker)
	dispatcher := new(MockDispatcher)
	uc := usecase.NewContactUsecase(checker, dispatcher, mailbox)
	ctx := context.Background()

	checker.On("Check", ctx, "ann@example.com").Return(emailcheck.Valid(), nil).Once()
	dispatcher.On("Verify", ctx).Return(nil).Once()
	dispatcher.On("Send", ctx, mock.AnythingOfType("*email.Message")).Return("<1.abc@portfolio.example>", nil).Run(func(args mock.Arguments) {
		msg := args.Get(1).(*email.Message)
		assert.Equal(t, "Ann", msg.FromName)
		assert.Equal(t, "Hi", msg.Subject)
		assert.Equal(t, "hello", msg.Text)
		assert.Equal(t, "ann@example.com", msg.ReplyTo)
		assert.Contains(t, msg.HTML, "<strong>From:</strong> Ann")
	}).Once()

	res, err := uc.SendContactMessage(ctx, validRequest())
	require.NoError(t, err)

	assert.Equal(t, "<1.abc@portfolio.example>", res.MessageID)
	assert.Equal(t, "Hi", res.Details.Subject)
	assert.Equal(t, "hello", res.Details.Content)
	assert.Equal(t, `"Ann" <me@portfolio.example>`, res.Details.From)
	assert.True(t, strings.HasSuffix(res.Details.Timestamp, "Z"))
	checker.AssertExpectations(t)
	dispatcher.AssertExpectations(t)
}

func TestContactWithoutSenderSkipsChecker(t *testing.T) {
	checker := new(MockChecker)
	dispatcher := new(MockDispatcher)
	uc := usecase.NewContactUsecase(checker, dispatcher, mailbox)
	ctx := context.Background()

	dispatcher.On("Verify", ctx).Return(nil)
	dispatcher.On("Send", ctx, mock.AnythingOfType("*email.Message")).Return("<2.abc@portfolio.example>", nil).Run(func(args mock.Arguments) {
		msg := args.Get(1).(*email.Message)
		assert.Equal(t, "AI Email Generator", msg.FromName)
		assert.Empty(t, msg.ReplyTo)
	})

	res, err := uc.SendContactMessage(ctx, &domain.ContactRequest{Content: "hello", SenderName: "Ann"})
	require.NoError(t, err)

	checker.AssertNotCalled(t, "Check", mock.Anything, mock.Anything)
	assert.Equal(t, `"AI Email Generator" <me@portfolio.example>`, res.Details.From)
}

func TestContactFromNameFallsBackToEmail(t *testing.T) {
	checker := new(MockChecker)
	dispatcher := new(MockDispatcher)
	uc := usecase.NewContactUsecase(checker, dispatcher, mailbox)
	ctx := context.Background()

	checker.On("Check", ctx, "ann@example.com").Return(emailcheck.Valid(), nil)
	dispatcher.On("Verify", ctx).Return(nil)
	dispatcher.On("Send", ctx, mock.AnythingOfType("*email.Message")).Return("<3.abc@portfolio.example>", nil)

	req := validRequest()
	req.SenderName = ""
	res, err := uc.SendContactMessage(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, `"ann@example.com" <me@portfolio.example>`, res.Details.From)
}

func TestContactRejectsSender(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name    string
		email   string
		verdict emailcheck.Verdict
		err     error
		remote  bool
	}{
		{name: "malformed", email: "ann@example"},
		{name: "whitespace only", email: "   "},
		{name: "padded", email: " ann@example.com"},
		{name: "disposable", email: "ann@example.com", verdict: emailcheck.Invalid(""), remote: true},
		{name: "upstream down", email: "ann@example.com", verdict: emailcheck.Invalid(""), err: emailcheck.ErrUpstream, remote: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			checker := new(MockChecker)
			dispatcher := new(MockDispatcher)
			uc := usecase.NewContactUsecase(checker, dispatcher, mailbox)
			if tc.remote {
				checker.On("Check", ctx, tc.email).Return(tc.verdict, tc.err).Once()
			}

			req := validRequest()
			req.SenderEmail = tc.email
			_, err := uc.SendContactMessage(ctx, req)

			assert.ErrorIs(t, err, domain.ErrInvalidEmail)
			assert.Equal(t, "Invalid email address", err.Error())
			dispatcher.AssertNotCalled(t, "Verify", mock.Anything)
			dispatcher.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
			if !tc.remote {
				checker.AssertNotCalled(t, "Check", mock.Anything, mock.Anything)
			}
			checker.AssertExpectations(t)
		})
	}
}

func TestContactRelayUnavailable(t *testing.T) {
	checker := new(MockChecker)
	dispatcher := new(MockDispatcher)
	uc := usecase.NewContactUsecase(checker, dispatcher, mailbox)
	ctx := context.Background()

	checker.On("Check", ctx, "ann@example.com").Return(emailcheck.Valid(), nil)
	dispatcher.On("Verify", ctx).Return(errors.New("smtp auth: 535 bad credentials"))

	_, err := uc.SendContactMessage(ctx, validRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRelayUnavailable)
	assert.Contains(t, err.Error(), "535 bad credentials")
	dispatcher.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestContactSendFailure(t *testing.T) {
	checker := new(MockChecker)
	dispatcher := new(MockDispatcher)
	uc := usecase.NewContactUsecase(checker, dispatcher, mailbox)
	ctx := context.Background()

	checker.On("Check", ctx, "ann@example.com").Return(emailcheck.Valid(), nil)
	dispatcher.On("Verify", ctx).Return(nil)
	dispatcher.On("Send", ctx, mock.Anything).Return("", errors.New("smtp send: 552 message too large"))

	_, err := uc.SendContactMessage(ctx, validRequest())
	assert.ErrorIs(t, err, domain.ErrSendFailed)
	assert.Contains(t, err.Error(), "552 message too large")
	assert.Equal(t, 1, dispatcher.sent)
}

func TestContactNotIdempotent(t *testing.T) {
	checker := new(MockChecker)
	dispatcher := new(MockDispatcher)
	uc := usecase.NewContactUsecase(checker, dispatcher, mailbox)
	ctx := context.Background()

	checker.On("Check", ctx, "ann@example.com").Return(emailcheck.Valid(), nil).Twice()
	dispatcher.On("Verify", ctx).Return(nil).Twice()
	dispatcher.On("Send", ctx, mock.Anything).Return("<first@portfolio.example>", nil).Once()
	dispatcher.On("Send", ctx, mock.Anything).Return("<second@portfolio.example>", nil).Once()

	first, err := uc.SendContactMessage(ctx, validRequest())
	require.NoError(t, err)
	second, err := uc.SendContactMessage(ctx, validRequest())
	require.NoError(t, err)

	assert.NotEqual(t, first.MessageID, second.MessageID)
	assert.Equal(t, 2, dispatcher.sent)
	checker.AssertNumberOfCalls(t, "Check", 2)
}

func TestContactSubjectFallback(t *testing.T) {
	ctx := context.Background()
	long := strings.Repeat("é", 60)

	cases := []struct {
		name string
		req  domain.ContactRequest
		want string
	}{
		{"prompt", domain.ContactRequest{Content: "body", Prompt: "write a haiku"}, "AI Generated Email: write a haiku..."},
		{"content when no prompt", domain.ContactRequest{Content: "just content"}, "AI Generated Email: just content..."},
		{"truncated to 50 characters", domain.ContactRequest{Content: "body", Prompt: long}, fmt.Sprintf("AI Generated Email: %s...", strings.Repeat("é", 50))},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dispatcher := new(MockDispatcher)
			uc := usecase.NewContactUsecase(new(MockChecker), dispatcher, mailbox)
			dispatcher.On("Verify", ctx).Return(nil)
			dispatcher.On("Send", ctx, mock.Anything).Return("<id@portfolio.example>", nil)

			req := tc.req
			res, err := uc.SendContactMessage(ctx, &req)
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Details.Subject)
		})
	}
}

func TestVerifyEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("malformed never reaches the checker", func(t *testing.T) {
		checker := new(MockChecker)
		uc := usecase.NewEmailVerificationUsecase(checker)

		v, err := uc.VerifyEmail(ctx, "not-an-email")
		require.NoError(t, err)
		assert.False(t, v.IsValid())
		checker.AssertNotCalled(t, "Check", mock.Anything, mock.Anything)
	})

	t.Run("valid", func(t *testing.T) {
		checker := new(MockChecker)
		checker.On("Check", ctx, "ann@example.com").Return(emailcheck.Valid(), nil)
		uc := usecase.NewEmailVerificationUsecase(checker)

		v, err := uc.VerifyEmail(ctx, "ann@example.com")
		require.NoError(t, err)
		assert.True(t, v.IsValid())
	})

	t.Run("padded address is malformed", func(t *testing.T) {
		checker := new(MockChecker)
		uc := usecase.NewEmailVerificationUsecase(checker)

		v, err := uc.VerifyEmail(ctx, " ann@example.com ")
		require.NoError(t, err)
		assert.False(t, v.IsValid())
		checker.AssertNotCalled(t, "Check", mock.Anything, mock.Anything)
	})

	t.Run("upstream failure", func(t *testing.T) {
		checker := new(MockChecker)
		checker.On("Check", ctx, "ann@example.com").Return(emailcheck.Invalid(""), emailcheck.ErrUpstream)
		uc := usecase.NewEmailVerificationUsecase(checker)

		v, err := uc.VerifyEmail(ctx, "ann@example.com")
		assert.ErrorIs(t, err, emailcheck.ErrUpstream)
		assert.False(t, v.IsValid())
		assert.Equal(t, "Invalid email address", v.Reason)
	})
}

type stubConfigurable bool

func (s stubConfigurable) IsConfigured() bool { return bool(s) }

func TestHealthCheck(t *testing.T) {
	uc := usecase.NewHealthUsecase(map[string]usecase.Configurable{
		"smtp":         stubConfigurable(true),
		"verification": stubConfigurable(false),
	})

	got := uc.Check(context.Background())
	assert.Equal(t, map[string]string{
		"status":       "ok",
		"smtp":         "configured",
		"verification": "missing",
	}, got)
}
