package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func newTestZerolog(t *testing.T) (*ZerologLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	l := zerolog.New(&buf)
	return NewZerologLogger(l), &buf
}

func TestZerologLogger_Levels_WriteExpectedOutput(t *testing.T) {
	log, buf := newTestZerolog(t)
	ctx := context.Background()

	log.Info(ctx, "inf", "b", "2")
	log.Warn(ctx, "wrn", "c", "3")
	log.Error(ctx, "err", "d", "4")

	out := buf.String()

	tests := []struct {
		level string
		msg   string
		attr  string
	}{
		{"info", "inf", `"b":"2"`},
		{"warn", "wrn", `"c":"3"`},
		{"error", "err", `"d":"4"`},
	}

	for _, tc := range tests {
		if !strings.Contains(out, `"level":"`+tc.level+`"`) {
			t.Fatalf("expected line with level %s in output:\n%s", tc.level, out)
		}
		if !strings.Contains(out, `"message":"`+tc.msg+`"`) {
			t.Fatalf("expected line with message %q in output:\n%s", tc.msg, out)
		}
		if !strings.Contains(out, tc.attr) {
			t.Fatalf("expected attribute %s in output:\n%s", tc.attr, out)
		}
	}
}

func TestZerologLogger_With_AddsAttributes(t *testing.T) {
	log, buf := newTestZerolog(t)
	ctx := context.Background()

	log2 := log.With("req_id", "123")
	log2.Info(ctx, "hello", "k", "v")

	out := buf.String()
	for _, s := range []string{`"req_id":"123"`, `"k":"v"`, `"message":"hello"`} {
		if !strings.Contains(out, s) {
			t.Fatalf("expected %q in output, got:\n%s", s, out)
		}
	}
}

func TestZerologLogger_OddArgsDoNotPanic(t *testing.T) {
	log, buf := newTestZerolog(t)
	log.Info(context.Background(), "odd", "dangling")
	if !strings.Contains(buf.String(), "!BADKEY") {
		t.Fatalf("expected dangling key marker, got:\n%s", buf.String())
	}
}
