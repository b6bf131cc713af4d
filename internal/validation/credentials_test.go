package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/communitystore/backend/domain"
)

func TestUsername(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr string
	}{
		{name: "valid", input: "alice", want: "alice"},
		{name: "trims whitespace", input: "  alice  ", want: "alice"},
		{name: "empty", input: "", wantErr: "Username is required"},
		{name: "too short", input: "ab", wantErr: "Username must be 3-30 characters"},
		{name: "too short after trim", input: "  ab  ", wantErr: "Username must be 3-30 characters"},
		{name: "exactly 30", input: strings.Repeat("a", 30), want: strings.Repeat("a", 30)},
		{name: "too long", input: strings.Repeat("a", 31), wantErr: "Username must be 3-30 characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Username(tt.input)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, domain.ErrorMessage(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEmail(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr string
	}{
		{name: "valid", input: "user@example.com", want: "user@example.com"},
		{name: "normalizes case and whitespace", input: "  User@Example.COM  ", want: "user@example.com"},
		{name: "empty", input: "", wantErr: "Email is required"},
		{name: "missing local part", input: "@example.com", wantErr: "Invalid email format"},
		{name: "missing domain dot", input: "user@example", wantErr: "Invalid email format"},
		{name: "embedded whitespace", input: "us er@example.com", wantErr: "Invalid email format"},
		{name: "double at", input: "user@@example.com", wantErr: "Invalid email format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Email(tt.input)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, domain.ErrorMessage(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPassword(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "valid", input: "secret1"},
		{name: "exactly 6", input: "123456"},
		{name: "exactly 100", input: strings.Repeat("p", 100)},
		{name: "empty", input: "", wantErr: "Password is required"},
		{name: "too short", input: "12345", wantErr: "Password must be at least 6 characters long"},
		{name: "too long", input: strings.Repeat("p", 101), wantErr: "Password must be no more than 100 characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Password(tt.input)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, domain.ErrorMessage(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, got)
		})
	}
}

func TestProfile(t *testing.T) {
	t.Run("trims both fields", func(t *testing.T) {
		name, bio, err := Profile("  Ada Lovelace  ", "  First programmer  ")
		require.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", name)
		assert.Equal(t, "First programmer", bio)
	})

	t.Run("full name over 80 characters", func(t *testing.T) {
		_, _, err := Profile(strings.Repeat("n", 81), "")
		require.Error(t, err)
		assert.Equal(t, "Full name must be 80 characters or less", domain.ErrorMessage(err))
	})

	t.Run("bio over 160 characters", func(t *testing.T) {
		_, _, err := Profile("", strings.Repeat("b", 161))
		require.Error(t, err)
		assert.Equal(t, "Bio must be 160 characters or less", domain.ErrorMessage(err))
	})

	t.Run("length is checked after trimming", func(t *testing.T) {
		padded := "  " + strings.Repeat("n", 80) + "  "
		name, _, err := Profile(padded, "")
		require.NoError(t, err)
		assert.Len(t, name, 80)
	})
}
