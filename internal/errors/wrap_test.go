package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorWrapper(t *testing.T) {
	t.Parallel()

	wrapper := NewWrapper("snapshot", "reload")

	t.Run("nil error stays nil", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, wrapper.Wrap(nil, "reload failed"))
		assert.NoError(t, wrapper.Wrapf(nil, "reload %s failed", "storage"))
	})

	t.Run("wrap keeps context and cause", func(t *testing.T) {
		t.Parallel()
		base := errors.New("database is locked")
		wrapped := wrapper.Wrap(base, "Failed to reload data")

		var we *WrappedError
		require.ErrorAs(t, wrapped, &we)
		assert.Equal(t, "snapshot", we.Module)
		assert.Equal(t, "reload", we.Operation)
		assert.Equal(t, "Failed to reload data", we.UserMessage)
		assert.ErrorIs(t, wrapped, base)
		assert.Equal(t, "[snapshot:reload] Failed to reload data: database is locked", wrapped.Error())
	})

	t.Run("wrapf formats message", func(t *testing.T) {
		t.Parallel()
		wrapped := wrapper.Wrapf(ErrNotFound, "source %q missing", "fixture.json")
		assert.Equal(t, `source "fixture.json" missing`, GetUserMessage(wrapped))
		assert.True(t, IsNotFound(wrapped))
	})
}

func TestGetUserMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"plain error", errors.New("plain"), "plain"},
		{"wrapped", NewWrapper("api", "chat").Wrap(ErrTimeout, "Request timed out"), "Request timed out"},
		{"wrapped deeper in chain", fmt.Errorf("handler: %w", NewWrapper("api", "reload").Wrap(ErrSnapshotUnavailable, "Data unavailable")), "Data unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, GetUserMessage(tt.err))
		})
	}
}
