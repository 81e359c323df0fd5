package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
)

func TestLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("hotel-api", &buf)

	l.Error("receipt_print_failed", "req-1", "could not print", errors.New("boom"), slog.Int64("receipt_id", 7))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	checks := map[string]any{
		"level":      "ERROR",
		"msg":        "could not print",
		"service":    "hotel-api",
		"action":     "receipt_print_failed",
		"request_id": "req-1",
		"receipt_id": float64(7),
	}
	for k, want := range checks {
		if entry[k] != want {
			t.Errorf("%s = %v, want %v", k, entry[k], want)
		}
	}
	errGroup, ok := entry["error"].(map[string]any)
	if !ok || errGroup["msg"] != "boom" {
		t.Errorf("error group = %v", entry["error"])
	}
}
