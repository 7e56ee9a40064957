package buildinfo

import "testing"

func TestVersionBase(t *testing.T) {
	old := Version
	defer func() { Version = old }()

	cases := map[string]string{
		"dev":            "0.0.0",
		"":               "0.0.0",
		"v1.2.3":         "1.2.3",
		"3.0.1-rc1":      "3.0.1",
		"v2.0.0+build.7": "2.0.0",
	}
	for in, want := range cases {
		Version = in
		if got := VersionBase(); got != want {
			t.Fatalf("VersionBase(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestShortFallsBackToCommit(t *testing.T) {
	oldV, oldC := Version, Commit
	defer func() { Version, Commit = oldV, oldC }()

	Version, Commit = "dev", "abc123"
	if got := Short(); got != "abc123" {
		t.Fatalf("Short() = %q", got)
	}
	Version = "v1.0.0"
	if got := Short(); got != "v1.0.0" {
		t.Fatalf("Short() = %q", got)
	}
}
