package status

import "testing"

func TestStateNames(t *testing.T) {
	for _, s := range States() {
		got, err := ParseState(s.String())
		if err != nil || got != s {
			t.Fatalf("ParseState(%q) = %v, %v", s.String(), got, err)
		}
	}
	if State(9).String() != "state(9)" {
		t.Fatalf("got %q", State(9).String())
	}
	if _, err := ParseState("erasing"); err == nil {
		t.Fatal("expected error")
	}
}

func TestParseRGB(t *testing.T) {
	for _, in := range []string{"#cc6600", "cc6600", "0xCC6600", " #CC6600 "} {
		c, err := ParseRGB(in)
		if err != nil || c != Hex(0xcc6600) {
			t.Fatalf("ParseRGB(%q) = %v, %v", in, c, err)
		}
	}
	for _, in := range []string{"", "#ccc", "#gg0000"} {
		if _, err := ParseRGB(in); err == nil {
			t.Fatalf("ParseRGB(%q): expected error", in)
		}
	}
	if Hex(0x000088).String() != "#000088" {
		t.Fatal("String")
	}
}
