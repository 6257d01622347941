package main

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

type closingPublisher struct{ err error }

func (closingPublisher) Publish(context.Context, string, interface{}) error { return nil }
func (p closingPublisher) Close() error { return p.err }

func TestClosePublisher(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	defer slog.SetDefault(prev)

	if err := closePublisher(closingPublisher{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected nothing logged on a clean close, got %q", buf.String())
	}

	closeErr := errors.New("connection reset")
	if err := closePublisher(closingPublisher{err: closeErr}); !errors.Is(err, closeErr) {
		t.Errorf("expected close error returned, got %v", err)
	}
	if !strings.Contains(buf.String(), "event publisher close failed") || !strings.Contains(buf.String(), "connection reset") {
		t.Errorf("expected close failure logged, got %q", buf.String())
	}
}
