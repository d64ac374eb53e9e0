package signal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeListener_VariadicWithError(t *testing.T) {
	var got []any
	inv, err := normalizeListener(func(args ...any) error {
		got = args
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, inv([]any{1, "a"}))
	assert.Equal(t, []any{1, "a"}, got)
}

func TestNormalizeListener_VariadicWithoutError(t *testing.T) {
	var got []any
	inv, err := normalizeListener(func(args ...any) { got = args })
	require.NoError(t, err)
	require.NoError(t, inv([]any{true}))
	assert.Equal(t, []any{true}, got)
}

func TestNormalizeListener_NiladicWithError(t *testing.T) {
	boom := errors.New("boom")
	inv, err := normalizeListener(func() error { return boom })
	require.NoError(t, err)
	assert.Equal(t, boom, inv([]any{1, 2}))
}

func TestNormalizeListener_NiladicWithoutError(t *testing.T) {
	called := false
	inv, err := normalizeListener(func() { called = true })
	require.NoError(t, err)
	require.NoError(t, inv(nil))
	assert.True(t, called)
}

func TestNormalizeListener_ListenerAlias(t *testing.T) {
	inv, err := normalizeListener(Listener(func(args ...any) error { return nil }))
	require.NoError(t, err)
	assert.NoError(t, inv(nil))
}

func TestNormalizeListener_NilRejected(t *testing.T) {
	_, err := normalizeListener(nil)
	assert.ErrorIs(t, err, ErrInvalidListener)
}

func TestNormalizeListener_UnsupportedShapeRejected(t *testing.T) {
	_, err := normalizeListener(42)
	require.ErrorIs(t, err, ErrInvalidListener)
	assert.Contains(t, err.Error(), "int")

	_, err = normalizeListener(func(n int) {})
	assert.ErrorIs(t, err, ErrInvalidListener)
}
