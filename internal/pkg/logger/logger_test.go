package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	return out
}

func TestContextHandler_AddsRequestFields(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewContextHandler(slog.NewJSONHandler(&buf, nil)))

	actor := uuid.New()
	ctx := WithRequestID(context.Background(), "req-1")
	ctx = WithUserID(ctx, actor)
	ctx = context.WithValue(ctx, ContextKeyLocale, "fr")

	log.InfoContext(ctx, "audit item updated", slog.String("audit_item_id", "x"))

	line := decodeLine(t, &buf)
	assert.Equal(t, "req-1", line["request_id"])
	assert.Equal(t, actor.String(), line["user_id"])
	assert.Equal(t, "fr", line["locale"])
	assert.Equal(t, "x", line["audit_item_id"])
}

func TestContextHandler_SkipsEmptyValues(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewContextHandler(slog.NewJSONHandler(&buf, nil)))

	ctx := WithUserID(WithRequestID(context.Background(), ""), uuid.Nil)
	log.InfoContext(ctx, "no fields")

	line := decodeLine(t, &buf)
	assert.NotContains(t, line, "request_id")
	assert.NotContains(t, line, "user_id")
}

func TestSanitizationHandler(t *testing.T) {
	tests := []struct {
		name  string
		attr  slog.Attr
		key   string
		want  string
		msg   string
		wantM string
	}{
		{
			name: "redacts_sensitive_key",
			attr: slog.String("db_password", "hunter2"),
			key:  "db_password",
			want: "***REDACTED***",
		},
		{
			name: "keeps_regular_values",
			attr: slog.String("reference", "BO-2026-000001"),
			key:  "reference",
			want: "BO-2026-000001",
		},
		{
			name:  "redacts_inline_secret_in_message",
			attr:  slog.String("offer", "o"),
			key:   "offer",
			want:  "o",
			msg:   "connect with token=abc123",
			wantM: "connect with token=***REDACTED***",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := slog.New(NewSanitizationHandler(slog.NewJSONHandler(&buf, nil)))

			msg := tt.msg
			if msg == "" {
				msg = "event"
			}
			log.Info(msg, tt.attr)

			line := decodeLine(t, &buf)
			assert.Equal(t, tt.want, line[tt.key])
			if tt.wantM != "" {
				assert.Equal(t, tt.wantM, line["msg"])
			}
		})
	}
}

func TestUserID(t *testing.T) {
	_, ok := UserID(context.Background())
	assert.False(t, ok)

	id := uuid.New()
	got, ok := UserID(WithUserID(context.Background(), id))
	assert.True(t, ok)
	assert.Equal(t, id, got)
}
