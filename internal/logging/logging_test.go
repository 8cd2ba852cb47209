package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := New("json", &buf)
	log.Info("server started", "port", "5000")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected a JSON line, got %q: %v", buf.String(), err)
	}
	if line["msg"] != "server started" || line["port"] != "5000" {
		t.Errorf("unexpected line: %v", line)
	}
}

func TestNew_TextFallback(t *testing.T) {
	for _, format := range []string{"text", "", "yaml"} {
		var buf bytes.Buffer
		New(format, &buf).Info("hello", "k", "v")
		out := buf.String()
		if !strings.Contains(out, "msg=hello") || !strings.Contains(out, "k=v") {
			t.Errorf("format %q: unexpected output %q", format, out)
		}
	}
}

func TestNew_DebugSuppressed(t *testing.T) {
	var buf bytes.Buffer
	New("text", &buf).Debug("noise")
	if buf.Len() != 0 {
		t.Errorf("debug should be filtered at info level, got %q", buf.String())
	}
}
