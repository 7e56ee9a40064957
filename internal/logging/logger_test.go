package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestModuleLevels(t *testing.T) {
	var buf bytes.Buffer
	Initialize(Config{
		Level:   "warn",
		Modules: map[string]string{"screen": "debug"},
		Output:  &buf,
	})

	GetLogger("screen").Debug("screen detail")
	GetLogger("led").Info("led detail")
	GetLogger("led").Warn("led warning")

	out := buf.String()
	if !strings.Contains(out, "screen detail") {
		t.Errorf("module override ignored: %q", out)
	}
	if strings.Contains(out, "led detail") {
		t.Errorf("global level ignored: %q", out)
	}
	if !strings.Contains(out, "module=led") {
		t.Errorf("missing module attribute: %q", out)
	}

	buf.Reset()
	if !SetModuleLevel("led", "debug") {
		t.Fatal("SetModuleLevel rejected debug")
	}
	GetLogger("led").Debug("now visible")
	if !strings.Contains(buf.String(), "now visible") {
		t.Errorf("runtime level change ignored: %q", buf.String())
	}
	if SetModuleLevel("led", "loud") {
		t.Error("accepted bogus level")
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	Initialize(Config{Format: "json", Output: &buf})
	GetLogger("json-test").Info("hello")
	if !strings.Contains(buf.String(), `"msg":"hello"`) {
		t.Fatalf("got %q", buf.String())
	}
}

func TestHALLogger(t *testing.T) {
	var buf bytes.Buffer
	Initialize(Config{Output: &buf})
	l := NewHALLogger(GetLogger("hal-test"))

	l.WriteLineString("led: #cc6600")
	l.WriteLineBytes([]byte("Plain line\n"))

	out := buf.String()
	if !strings.Contains(out, "component=led") || !strings.Contains(out, "msg=#cc6600") {
		t.Errorf("component not split: %q", out)
	}
	if !strings.Contains(out, `msg="Plain line"`) {
		t.Errorf("plain line: %q", out)
	}
}
