package logging

import (
	"strings"
	"testing"
)

func TestInitLevelFiltering(t *testing.T) {
	defer Init(Config{})

	var b strings.Builder
	Init(Config{Level: LevelWarn, Output: &b})

	Get().Debug("quiet")
	Get().Info("quiet")
	Get().Warn("loud", "key", "value")

	out := b.String()
	if strings.Contains(out, "quiet") {
		t.Error("messages below the configured level must be dropped")
	}
	if !strings.Contains(out, "loud") || !strings.Contains(out, "key=value") {
		t.Errorf("warn output missing, got %q", out)
	}
}

func TestInitJSONFormat(t *testing.T) {
	defer Init(Config{})

	var b strings.Builder
	Init(Config{Level: LevelInfo, Output: &b, Format: "json"})

	Get().Info("hello", "relation", "movie")
	if !strings.Contains(b.String(), `"relation":"movie"`) {
		t.Errorf("expected JSON output, got %q", b.String())
	}
}

func TestDefaultIsSilentAndNonNil(t *testing.T) {
	if Get() == nil {
		t.Fatal("the shared logger must never be nil")
	}
}
