package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{name: "valid", email: "user@example.com", wantErr: false},
		{name: "valid with plus", email: "user+tag@example.co.uk", wantErr: false},
		{name: "missing at", email: "userexample.com", wantErr: true},
		{name: "missing domain dot", email: "user@example", wantErr: true},
		{name: "contains spaces", email: "us er@example.com", wantErr: true},
		{name: "empty", email: "", wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateEmail(tc.email)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	assert.Error(t, ValidatePassword(""))
	assert.Error(t, ValidatePassword("12345"))
	assert.NoError(t, ValidatePassword("123456"))
	assert.NoError(t, ValidatePassword("correct horse battery staple"))
}

func TestValidateUsername(t *testing.T) {
	t.Parallel()

	assert.Error(t, ValidateUsername("ab"))
	assert.NoError(t, ValidateUsername("abc"))
	assert.NoError(t, ValidateUsername(strings.Repeat("a", 50)))
	assert.Error(t, ValidateUsername(strings.Repeat("a", 51)))
}
