package usecase

import (
	"context"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/emailcheck"
	"portfolio-backend/pkg/logger"
	"portfolio-backend/pkg/metrics"
)

type emailVerificationUsecase struct {
	checker domain.DeliverabilityChecker
}

func NewEmailVerificationUsecase(checker domain.DeliverabilityChecker) domain.EmailVerificationUsecase {
	return &emailVerificationUsecase{checker: checker}
}

// VerifyEmail rejects malformed (including padded) addresses locally and asks the checker about
// the rest. A checker failure is returned alongside an invalid verdict.
func (uc *emailVerificationUsecase) VerifyEmail(ctx context.Context, addr string) (emailcheck.Verdict, error) {
	if !emailcheck.ValidFormat(addr) {
		metrics.EmailVerificationsTotal.WithLabelValues("invalid").Inc()
		return emailcheck.Invalid(emailcheck.InvalidReason), nil
	}

	verdict, err := uc.checker.Check(ctx, addr)
	if err != nil {
		logger.Log.Warn("Deliverability check failed", "error", err)
		metrics.EmailVerificationsTotal.WithLabelValues("error").Inc()
		return emailcheck.Invalid(emailcheck.InvalidReason), err
	}

	metrics.EmailVerificationsTotal.WithLabelValues(verdict.Status.String()).Inc()
	return verdict, nil
}
