package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestComponentCarriesRequestID(t *testing.T) {
	var buf bytes.Buffer
	prev := Logger
	Logger = zerolog.New(&buf)
	defer func() { Logger = prev }()

	ctx := ContextWithRequestID(context.Background(), "req-1")
	Component(ctx, "cart", "handler").Info().Msg("hello")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("invalid log line: %v", err)
	}
	if line["request_id"] != "req-1" || line["component"] != "cart" || line["layer"] != "handler" {
		t.Fatalf("unexpected fields: %v", line)
	}
}

func TestSetLevel(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)
	SetLevel("ERROR")
	if zerolog.GlobalLevel() != zerolog.ErrorLevel {
		t.Fatalf("expected error level, got %s", zerolog.GlobalLevel())
	}
	SetLevel("nonsense")
	if zerolog.GlobalLevel() != zerolog.InfoLevel {
		t.Fatalf("expected info level, got %s", zerolog.GlobalLevel())
	}
}
