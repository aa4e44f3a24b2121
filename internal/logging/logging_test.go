package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		"info":    LevelInfo,
		"warning": LevelWarning,
		"warn":    LevelWarning,
		"error":   LevelError,
		"bogus":   LevelNone,
	}
	for s, expected := range cases {
		if l := ParseLevel(s); l != expected {
			t.Errorf("unexpected level for %q: %v != %v", s, l, expected)
		}
	}
}

func TestSetLevel(t *testing.T) {
	defer SetLevel(LevelWarning)

	SetLevel(LevelDebug)
	if level.Level() != zapcore.DebugLevel {
		t.Errorf("unexpected zap level %v", level.Level())
	}

	SetLevel(LevelNone)
	if level.Enabled(zapcore.ErrorLevel) {
		t.Errorf("error output not disabled for LevelNone")
	}
}
