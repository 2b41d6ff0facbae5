package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapAndIsCode(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := Wrap(CodeUpstreamUnavailable, "pollen fetch failed", cause)

	require.True(t, IsCode(err, CodeUpstreamUnavailable))
	require.False(t, IsCode(err, CodeValidation))
	require.Equal(t, "pollen fetch failed: dial tcp: connection refused", err.Error())
	require.ErrorIs(t, err, cause)
}

func TestWrapWithoutCause(t *testing.T) {
	err := Wrap(CodeNotFound, "no stored profile for user", nil)
	require.True(t, IsCode(err, CodeNotFound))
	require.Equal(t, "no stored profile for user", err.Error())
}

func TestIsCodeThroughWrapping(t *testing.T) {
	inner := Wrap(CodeValidation, "invalid latitude", nil)
	outer := fmt.Errorf("building verdict: %w", inner)
	require.True(t, IsCode(outer, CodeValidation))
}

func TestIsCodePlainError(t *testing.T) {
	require.False(t, IsCode(errors.New("boom"), CodeValidation))
	require.False(t, IsCode(nil, CodeValidation))
}
