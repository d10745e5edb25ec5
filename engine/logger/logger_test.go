package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestConfigureLevel(t *testing.T) {
	tests := []struct {
		in   string
		want logrus.Level
	}{
		{"", logrus.InfoLevel},
		{"debug", logrus.DebugLevel},
		{"WARN", logrus.WarnLevel},
		{"nonsense", logrus.InfoLevel},
	}
	for _, tt := range tests {
		l := logrus.New()
		Configure(l, tt.in, "", &bytes.Buffer{})
		if l.GetLevel() != tt.want {
			t.Errorf("level %q: got %v, want %v", tt.in, l.GetLevel(), tt.want)
		}
	}
}

func TestConfigureJSON(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	Configure(l, "info", "JSON", &buf)
	l.WithField("wave", 2).Info("wave started")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not json: %q", buf.String())
	}
	if entry["msg"] != "wave started" || entry["wave"] != float64(2) {
		t.Errorf("entry = %v", entry)
	}
}

func TestConfigureTextDropsDebug(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	Configure(l, "info", "text", &buf)
	l.Debug("hidden")
	l.Info("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("output = %q", buf.String())
	}
}
