package branding

import (
	"strings"
	"testing"
)

func TestAppName(t *testing.T) {
	if AppName != "VTNDS" {
		t.Fatalf("AppName = %q, want %q", AppName, "VTNDS")
	}
	if !strings.HasPrefix(HarnessName, AppName) {
		t.Fatalf("HarnessName = %q should start with %q", HarnessName, AppName)
	}
}
