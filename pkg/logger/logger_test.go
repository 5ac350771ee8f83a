package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	if got := ParseLevel(""); got != zerolog.InfoLevel {
		t.Fatalf("expected info for empty level, got %v", got)
	}
	if got := ParseLevel("DEBUG"); got != zerolog.DebugLevel {
		t.Fatalf("expected debug, got %v", got)
	}
	if got := ParseLevel("nonsense"); got != zerolog.InfoLevel {
		t.Fatalf("expected info fallback, got %v", got)
	}
}

func TestContextFieldsFlowIntoOutput(t *testing.T) {
	var buf bytes.Buffer
	logg := New(Options{ServiceName: "test", Output: &buf})

	ctx := logg.WithRequestID(context.Background(), "req-123")
	ctx = logg.WithProductID(ctx, "prod-9")
	logg.Info(ctx, "sale recorded")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}
	if entry["request_id"] != "req-123" {
		t.Fatalf("missing request_id field: %v", entry)
	}
	if entry["product_id"] != "prod-9" {
		t.Fatalf("missing product_id field: %v", entry)
	}
	if entry["service"] != "test" {
		t.Fatalf("missing service field: %v", entry)
	}
	if entry["message"] != "sale recorded" {
		t.Fatalf("unexpected message: %v", entry)
	}
}

func TestErrorIncludesStack(t *testing.T) {
	var buf bytes.Buffer
	logg := New(Options{ServiceName: "test", Output: &buf})

	logg.Error(context.Background(), "failed", context.DeadlineExceeded)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}
	if entry["stack"] == nil || entry["stack"] == "" {
		t.Fatalf("expected stack trace in error log: %v", entry)
	}
}
