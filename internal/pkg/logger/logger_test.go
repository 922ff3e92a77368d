package logger

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestNewWithWriterJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "debug", "json")

	log.Debug().Str("component", "test").Msg("hello")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected json line, got %q: %v", buf.String(), err)
	}
	if entry["message"] != "hello" || entry["component"] != "test" || entry["level"] != "debug" {
		t.Fatalf("unexpected entry %v", entry)
	}
}

func TestNewWithWriterFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "loud", "json")

	log.Debug().Msg("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected debug to be filtered at info level, got %q", buf.String())
	}

	log.Info().Msg("shown")
	if buf.Len() == 0 {
		t.Fatal("expected info entry to be written")
	}
}
