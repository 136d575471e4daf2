package v1

import (
	"net/http"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/emailcheck"

	"github.com/gin-gonic/gin"
)

type EmailVerificationHandler struct {
	verificationUC domain.EmailVerificationUsecase
}

func NewEmailVerificationHandler(api *gin.RouterGroup, verificationUC domain.EmailVerificationUsecase) {
	handler := &EmailVerificationHandler{
		verificationUC: verificationUC,
	}

	api.POST("/verify-email", handler.VerifyEmail)
}

// VerifyEmail godoc
// @Summary      Verify Email Address
// @Description  Checks syntax locally and deliverability with the third-party service.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      domain.VerifyEmailRequest  true  "Address to verify"
// @Success      200   {object}  domain.VerifyEmailResponse
// @Failure      400   {object}  domain.VerifyEmailResponse
// @Failure      500   {object}  domain.VerifyEmailResponse
// @Router       /verify-email [post]
func (h *EmailVerificationHandler) VerifyEmail(c *gin.Context) {
	invalid := domain.VerifyEmailResponse{IsValid: false, Error: emailcheck.InvalidReason}

	var req domain.VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.JSON(c, http.StatusBadRequest, invalid)
		return
	}

	verdict, err := h.verificationUC.VerifyEmail(c.Request.Context(), req.Email)
	if err != nil {
		response.JSON(c, http.StatusInternalServerError, invalid)
		return
	}

	response.JSON(c, http.StatusOK, domain.NewVerifyEmailResponse(verdict))
}
