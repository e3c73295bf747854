package ctxutil

import (
	"context"
	"testing"
)

func TestUserIDContext(t *testing.T) {
	t.Parallel()

	t.Run("empty context", func(t *testing.T) {
		t.Parallel()
		if userID := GetUserID(context.Background()); userID != "" {
			t.Errorf("Expected empty string, got %s", userID)
		}
	})

	t.Run("with user ID", func(t *testing.T) {
		t.Parallel()
		ctx := WithUserID(context.Background(), "U1234567890")
		if userID := GetUserID(ctx); userID != "U1234567890" {
			t.Errorf("Expected userID U1234567890, got %s", userID)
		}
	})
}

func TestChatIDContext(t *testing.T) {
	t.Parallel()

	t.Run("empty context", func(t *testing.T) {
		t.Parallel()
		if chatID := GetChatID(context.Background()); chatID != "" {
			t.Errorf("Expected empty string, got %s", chatID)
		}
	})

	t.Run("with chat ID", func(t *testing.T) {
		t.Parallel()
		ctx := WithChatID(context.Background(), "C9876543210")
		if chatID := GetChatID(ctx); chatID != "C9876543210" {
			t.Errorf("Expected chatID C9876543210, got %s", chatID)
		}
	})
}

func TestRequestIDContext(t *testing.T) {
	t.Parallel()

	t.Run("empty context", func(t *testing.T) {
		t.Parallel()
		if requestID, ok := GetRequestID(context.Background()); ok || requestID != "" {
			t.Errorf("Expected no request ID, got %q (ok=%v)", requestID, ok)
		}
	})

	t.Run("with request ID", func(t *testing.T) {
		t.Parallel()
		ctx := WithRequestID(context.Background(), "req-abc")
		if requestID, ok := GetRequestID(ctx); !ok || requestID != "req-abc" {
			t.Errorf("Expected req-abc, got %q (ok=%v)", requestID, ok)
		}
	})
}

func TestSessionIDContext(t *testing.T) {
	t.Parallel()

	t.Run("empty context", func(t *testing.T) {
		t.Parallel()
		if sessionID := GetSessionID(context.Background()); sessionID != "" {
			t.Errorf("Expected empty string, got %s", sessionID)
		}
	})

	t.Run("with session ID", func(t *testing.T) {
		t.Parallel()
		ctx := WithSessionID(context.Background(), "sess-42")
		if sessionID := GetSessionID(ctx); sessionID != "sess-42" {
			t.Errorf("Expected sess-42, got %s", sessionID)
		}
	})
}

func TestContextChaining(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ctx = WithUserID(ctx, "user1")
	ctx = WithChatID(ctx, "chat1")
	ctx = WithRequestID(ctx, "req1")
	ctx = WithSessionID(ctx, "sess1")

	if GetUserID(ctx) != "user1" {
		t.Error("UserID not preserved in chained context")
	}
	if GetChatID(ctx) != "chat1" {
		t.Error("ChatID not preserved in chained context")
	}
	if requestID, _ := GetRequestID(ctx); requestID != "req1" {
		t.Error("RequestID not preserved in chained context")
	}
	if GetSessionID(ctx) != "sess1" {
		t.Error("SessionID not preserved in chained context")
	}
}

func TestPreserveTracing(t *testing.T) {
	t.Parallel()

	t.Run("preserves all tracing values", func(t *testing.T) {
		t.Parallel()
		parentCtx := context.Background()
		parentCtx = WithUserID(parentCtx, "user123")
		parentCtx = WithChatID(parentCtx, "chat456")
		parentCtx = WithRequestID(parentCtx, "req789")
		parentCtx = WithSessionID(parentCtx, "sess-xyz")

		detachedCtx := PreserveTracing(parentCtx)

		if userID := GetUserID(detachedCtx); userID != "user123" {
			t.Errorf("Expected userID 'user123', got %q", userID)
		}
		if chatID := GetChatID(detachedCtx); chatID != "chat456" {
			t.Errorf("Expected chatID 'chat456', got %q", chatID)
		}
		if requestID, ok := GetRequestID(detachedCtx); !ok || requestID != "req789" {
			t.Errorf("Expected requestID 'req789', got %q (ok=%v)", requestID, ok)
		}
		if sessionID := GetSessionID(detachedCtx); sessionID != "sess-xyz" {
			t.Errorf("Expected sessionID 'sess-xyz', got %q", sessionID)
		}
	})

	t.Run("handles partial values", func(t *testing.T) {
		t.Parallel()
		detached := PreserveTracing(WithUserID(context.Background(), "user_only"))

		if userID := GetUserID(detached); userID != "user_only" {
			t.Errorf("Expected userID 'user_only', got %q", userID)
		}
		if chatID := GetChatID(detached); chatID != "" {
			t.Errorf("Expected empty chatID, got %q", chatID)
		}
		if _, ok := GetRequestID(detached); ok {
			t.Error("Expected no requestID")
		}
	})

	t.Run("creates independent context (cancellation)", func(t *testing.T) {
		t.Parallel()
		cancelCtx, cancel := context.WithCancel(WithUserID(context.Background(), "user_cancel"))
		detached := PreserveTracing(cancelCtx)

		cancel()

		if err := cancelCtx.Err(); err == nil {
			t.Error("Expected parent context to be canceled")
		}
		if err := detached.Err(); err != nil {
			t.Errorf("Expected detached context to be active, got error: %v", err)
		}
		if userID := GetUserID(detached); userID != "user_cancel" {
			t.Errorf("Expected userID 'user_cancel', got %q", userID)
		}
	})
}
