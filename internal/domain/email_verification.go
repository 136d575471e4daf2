package domain

import (
	"context"

	"portfolio-backend/pkg/emailcheck"
)

// VerifyEmailRequest is the body of POST /api/verify-email
type VerifyEmailRequest struct {
	Email string `json:"email"`
}

// VerifyEmailResponse is the JSON projection of a deliverability verdict
type VerifyEmailResponse struct {
	IsValid bool   `json:"isValid"`
	Error   string `json:"error,omitempty"`
}

func NewVerifyEmailResponse(v emailcheck.Verdict) VerifyEmailResponse {
	if v.IsValid() {
		return VerifyEmailResponse{IsValid: true}
	}
	return VerifyEmailResponse{IsValid: false, Error: v.Reason}
}

type EmailVerificationUsecase interface {
	// VerifyEmail returns an error only when the verification service failed
	VerifyEmail(ctx context.Context, addr string) (emailcheck.Verdict, error)
}
