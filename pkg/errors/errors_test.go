package errors

import (
	stdErrors "errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("mapping values are not allowed in this context")
	err := NewParseError("config.yaml", 3, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "config.yaml", parseErr.Path)
	require.Equal(t, 3, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: config.yaml:3: mapping values are not allowed in this context", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("config.yaml", 0, fs.ErrPermission)
	require.Equal(t, "parse error: config.yaml: permission denied", err.Error())
	require.ErrorIs(t, err, fs.ErrPermission)
}

func TestValidationErrorNamesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("colour", "must be one of auto always never", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "colour", validationErr.Field)
	require.Equal(t, "validation error: colour: must be one of auto always never", err.Error())

	require.Equal(t, "validation error: bad", NewValidationError("", "bad", nil).Error())
}

func TestListErrorIncludesPath(t *testing.T) {
	t.Parallel()

	err := NewListError("/root/secret", fs.ErrPermission)

	var listErr *ListError
	require.ErrorAs(t, err, &listErr)
	require.Equal(t, "/root/secret", listErr.Path)
	require.ErrorIs(t, err, fs.ErrPermission)
	require.Equal(t, "/root/secret: permission denied", err.Error())
}

func TestNilReceiversAreSafe(t *testing.T) {
	t.Parallel()

	var p *ParseError
	var v *ValidationError
	var l *ListError

	require.Equal(t, "", p.Error())
	require.Nil(t, p.Unwrap())
	require.Equal(t, "", v.Error())
	require.Nil(t, v.Unwrap())
	require.Equal(t, "", l.Error())
	require.Nil(t, l.Unwrap())
}
