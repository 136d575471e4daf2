package emailcheck

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidFormat(t *testing.T) {
	tests := []struct {
		addr string
		want bool
	}{
		{"a@b.c", true},
		{"ann@example.com", true},
		{"first.last+tag@mail.example.co.uk", true},
		{"", false},
		{"plainaddress", false},
		{"@example.com", false},
		{"ann@", false},
		{"ann@example", false},
		{"ann@@example.com", false},
		{"ann@foo@example.com", false},
		{"ann@example..com", false},
		{"ann@.example.com", false},
		{"ann@example.com.", false},
		{"ann smith@example.com", false},
		{"ann@exa mple.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidFormat(tt.addr))
		})
	}
}

func TestRegisterValidators(t *testing.T) {
	v := validator.New()
	require.NoError(t, RegisterValidators(v))

	type form struct {
		Email string `validate:"omitempty,address"`
	}

	assert.NoError(t, v.Struct(form{}))
	assert.NoError(t, v.Struct(form{Email: "ann@example.com"}))
	assert.Error(t, v.Struct(form{Email: "ann@example"}))
}
