package apperror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := New(http.StatusInternalServerError, "Failed to send email", cause).WithDetails(cause.Error())

	assert.Equal(t, "Failed to send email", err.Error())
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "dial tcp: connection refused", err.Details)
}

func TestConstructors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, BadRequest("bad").Code)
	assert.Equal(t, http.StatusForbidden, Forbidden("nope").Code)
	assert.Equal(t, http.StatusInternalServerError, Internal(nil).Code)
}
