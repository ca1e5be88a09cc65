package buildvars

import "testing"

func TestVersionOrDefault(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	Version = ""
	if got := VersionOrDefault("dev"); got != "dev" {
		t.Fatalf("expected default 'dev', got %q", got)
	}
	Version = "1.4.0"
	if got := VersionOrDefault("dev"); got != "1.4.0" {
		t.Fatalf("expected '1.4.0', got %q", got)
	}
}
