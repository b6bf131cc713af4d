package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "User not found", ErrorMessage(ErrUserNotFound))
	assert.Equal(t, "", ErrorMessage(nil))
	assert.Equal(t, "plain failure", ErrorMessage(errors.New("plain failure")))

	wrapped := WrapError(ErrCodeInternal, "Failed to save purchase", errors.New("socket closed"))
	assert.Equal(t, "Failed to save purchase", ErrorMessage(wrapped))
}

func TestIsDomainError(t *testing.T) {
	assert.True(t, IsDomainError(ErrUserNotFound, ErrCodeNotFound))
	assert.False(t, IsDomainError(ErrUserNotFound, ErrCodeConflict))
	assert.False(t, IsDomainError(errors.New("plain"), ErrCodeInternal))

	wrapped := WrapError(ErrCodeInternal, "outer", ErrUserNotFound)
	assert.True(t, IsDomainError(wrapped, ErrCodeInternal))
	assert.True(t, errors.Is(wrapped, ErrUserNotFound))
}

func TestErrorString(t *testing.T) {
	assert.Equal(t, "Cart is empty", ErrCartEmpty.Error())

	wrapped := WrapError(ErrCodeInternal, "outer", errors.New("inner"))
	assert.Equal(t, "outer: inner", wrapped.Error())
}
