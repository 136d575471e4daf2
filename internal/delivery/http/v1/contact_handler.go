package v1

import (
	"errors"
	"net/http"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes behind the CORS gate (public, no auth required)
func NewContactHandler(api *gin.RouterGroup, contactUC domain.ContactUsecase, corsGate gin.HandlerFunc) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	api.POST("/send-email", corsGate, handler.SendEmail)
	// Preflight is answered by the gate itself
	api.OPTIONS("/send-email", corsGate)
}

// SendEmail godoc
// @Summary      Send Contact Email
// @Description  Verifies the optional sender address, then relays one message to the site owner's mailbox.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactRequest  true  "Contact Form Data"
// @Success      200      {object}  domain.ContactResponse
// @Failure      400      {object}  response.ErrorBody
// @Failure      403      {object}  response.ErrorBody
// @Failure      500      {object}  response.ErrorBody
// @Router       /send-email [post]
func (h *ContactHandler) SendEmail(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body").WithDetails(validation.FormatValidationErrors(err)))
		return
	}

	result, err := h.contactUC.SendContactMessage(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidEmail) {
			c.Error(apperror.BadRequest("Invalid email address"))
			return
		}
		c.Error(apperror.New(http.StatusInternalServerError, "Failed to send email", err).WithDetails(err.Error()))
		return
	}

	response.JSON(c, http.StatusOK, domain.ContactResponse{
		Message: "Email sent successfully",
		ID:      result.MessageID,
		Details: result.Details,
	})
}
