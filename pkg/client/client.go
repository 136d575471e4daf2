// Package client talks to the contact API the way the site's contact page
// does: gate the form locally, verify the sender, then submit.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"portfolio-backend/pkg/emailcheck"
	"portfolio-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// ContactForm mirrors the fields of the contact page. Field order is the
// order in which problems are reported.
type ContactForm struct {
	Content     string `json:"content" validate:"required"`
	SenderName  string `json:"senderName" validate:"required"`
	SenderEmail string `json:"senderEmail" validate:"required,address"`
	Subject     string `json:"subject" validate:"required"`
}

// FormError is a problem the user can fix before anything is sent
type FormError struct {
	Field   string
	Message string
}

func (e *FormError) Error() string { return e.Message }

var formMessages = map[string]map[string]string{
	"Content":     {"required": "Please enter a message"},
	"SenderName":  {"required": "Please enter your name"},
	"SenderEmail": {"required": "Please enter your email", "address": "Please enter a valid email address"},
	"Subject":     {"required": "Please enter a subject"},
}

var validate = validation.NewValidator()

func (f ContactForm) trimmed() ContactForm {
	return ContactForm{
		Content:     strings.TrimSpace(f.Content),
		SenderName:  strings.TrimSpace(f.SenderName),
		SenderEmail: strings.TrimSpace(f.SenderEmail),
		Subject:     strings.TrimSpace(f.Subject),
	}
}

// ValidateForm trims the form and returns the first problem as a *FormError
func ValidateForm(form ContactForm) error {
	err := validate.Struct(form.trimmed())
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	first := verrs[0]
	msg := formMessages[first.Field()][first.Tag()]
	if msg == "" {
		msg = validation.FormatValidationErrors(verrs[:1])[0]
	}
	return &FormError{Field: first.Field(), Message: msg}
}

// APIError is a non-2xx answer from the contact API
type APIError struct {
	Status  int
	Message string
	Details string
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s (%s)", e.Message, e.Details)
	}
	return e.Message
}

// SendResult is the decoded success body of /api/send-email
type SendResult struct {
	Message string `json:"message"`
	ID      string `json:"id"`
	Details struct {
		From      string `json:"from"`
		Subject   string `json:"subject"`
		Content   string `json:"content"`
		Timestamp string `json:"timestamp"`
	} `json:"details"`
}

type Client struct {
	baseURL string
	origin  string
	http    *http.Client
}

// New returns a client for the API at baseURL. origin, when set, is sent as
// the Origin header so the CORS gate admits the request.
func New(baseURL, origin string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		origin:  origin,
		http:    httpClient,
	}
}

// VerifyEmail reports whether addr passed the server-side verification. Any
// failure along the way, including transport errors, yields false.
func (c *Client) VerifyEmail(ctx context.Context, addr string) (bool, string) {
	if !emailcheck.ValidFormat(addr) {
		return false, emailcheck.InvalidReason
	}

	var res struct {
		IsValid bool   `json:"isValid"`
		Error   string `json:"error"`
	}
	if err := c.post(ctx, "/api/verify-email", map[string]string{"email": addr}, &res); err != nil {
		return false, emailcheck.InvalidReason
	}
	if !res.IsValid && res.Error == "" {
		res.Error = emailcheck.InvalidReason
	}
	return res.IsValid, res.Error
}

// SendContact gates the form, verifies the sender and submits the message.
// A *FormError means no request was made.
func (c *Client) SendContact(ctx context.Context, form ContactForm) (*SendResult, error) {
	if err := ValidateForm(form); err != nil {
		return nil, err
	}
	// Submit exactly what passed the gate
	form = form.trimmed()

	if ok, reason := c.VerifyEmail(ctx, form.SenderEmail); !ok {
		return nil, &APIError{Status: http.StatusBadRequest, Message: reason}
	}

	var res SendResult
	if err := c.post(ctx, "/api/send-email", form, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.origin != "" {
		req.Header.Set("Origin", c.origin)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e struct {
			Error   string      `json:"error"`
			Details interface{} `json:"details"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		apiErr := &APIError{Status: resp.StatusCode, Message: e.Error}
		if apiErr.Message == "" {
			apiErr.Message = "Failed to send email"
		}
		if e.Details != nil {
			apiErr.Details = fmt.Sprint(e.Details)
		}
		return apiErr
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
