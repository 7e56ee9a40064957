package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"uf2status/ui/status"
)

func TestDefaultIsValid(t *testing.T) {
	b := Default()
	if err := b.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	cfg, err := b.AppConfig()
	if err != nil {
		t.Fatalf("AppConfig: %v", err)
	}
	if cfg.Colors != status.DefaultColors() {
		t.Errorf("colors: got %+v", cfg.Colors)
	}
	if cfg.BlinkPeriod != status.DefaultBlinkPeriod {
		t.Errorf("period: got %v", cfg.BlinkPeriod)
	}
}

func TestParseTOML(t *testing.T) {
	src := `
name = "pybadge"

[display]
width = 128

[led]
kind = "apa102"
blink_period = "100ms"
writing = "#0000ff"

[labels]
product = "PyBadge"
`
	b, err := Parse([]byte(src), ".toml")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if b.Name != "pybadge" || b.Display.Width != 128 || b.Display.Height != 128 {
		t.Errorf("display: %+v", b.Display)
	}
	if b.Labels.Product != "PyBadge" || b.Labels.Site != Default().Labels.Site {
		t.Errorf("labels: %+v", b.Labels)
	}
	cfg, err := b.AppConfig()
	if err != nil {
		t.Fatalf("AppConfig: %v", err)
	}
	if cfg.BlinkPeriod != 100*time.Millisecond || cfg.Colors.Writing != status.Hex(0x0000ff) {
		t.Errorf("app config: %+v", cfg)
	}
	if cfg.Colors.Mounted != status.DefaultColors().Mounted {
		t.Errorf("default color lost: %+v", cfg.Colors)
	}
}

func TestParseYAML(t *testing.T) {
	src := `
name: itsybitsy
display:
  none: true
led:
  kind: none
logging:
  level: debug
`
	b, err := Parse([]byte(src), "yml")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !b.Display.None || b.LED.Kind != LEDNone || b.Logging.Level != "debug" {
		t.Errorf("got %+v", b)
	}
	hc := b.HostConfig()
	if !hc.NoDisplay || !hc.NoIndicator {
		t.Errorf("host config: %+v", hc)
	}

	if _, err := Parse(nil, "yaml"); err != nil {
		t.Errorf("empty yaml: %v", err)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name, format, src, want string
	}{
		{"format", "json", `{}`, "unsupported format"},
		{"unknown field", "toml", "colour = 1\n", "parse toml"},
		{"yaml unknown", "yaml", "colour: 1\n", "parse yaml"},
		{"size", "toml", "[display]\nwidth = 0\n", "display"},
		{"kind", "toml", "[led]\nkind = \"dotstar\"\n", "unknown kind"},
		{"period", "toml", "[led]\nblink_period = \"0s\"\n", "blink_period"},
		{"color", "toml", "[led]\nmounted = \"green\"\n", "led: mounted"},
		{"label", "toml", "[labels]\nproduct = \"café\"\n", "undrawable"},
	}
	for _, tc := range cases {
		_, err := Parse([]byte(tc.src), tc.format)
		if err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Errorf("%s: got %v, want %q", tc.name, err, tc.want)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "board.toml")
	if err := os.WriteFile(path, []byte("name = \"disk\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	b, err := Load(path)
	if err != nil || b.Name != "disk" {
		t.Fatalf("Load: %+v, %v", b, err)
	}
	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
