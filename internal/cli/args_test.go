package cli

import (
	"testing"

	"github.com/vvka-141/dirmap/pkg/dirmap"
)

func TestRequireIndex(t *testing.T) {
	if err := RequireIndex(getCmd, []string{}); dirmap.ExitCodeForError(err) != dirmap.ExitUsageError {
		t.Errorf("Expected usage error for missing index, got %v", err)
	}
	if err := RequireIndex(getCmd, []string{"a", "b", "c"}); err != nil {
		t.Errorf("Expected no error for several keys, got %v", err)
	}
}

func TestRequireKey(t *testing.T) {
	if err := RequireKey(rmCmd, []string{}); dirmap.ExitCodeForError(err) != dirmap.ExitUsageError {
		t.Errorf("Expected usage error for missing key, got %v", err)
	}
	if err := RequireKey(rmCmd, []string{"a", "b"}); dirmap.ExitCodeForError(err) != dirmap.ExitUsageError {
		t.Errorf("Expected usage error for two keys, got %v", err)
	}
	if err := RequireKey(rmCmd, []string{"a"}); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
}

func TestRequireKeyAndValue(t *testing.T) {
	if err := RequireKeyAndValue(setCmd, []string{}); err == nil {
		t.Error("Expected error for missing key")
	}
	if err := RequireKeyAndValue(setCmd, []string{"k"}); err != nil {
		t.Errorf("Expected stdin form to be accepted, got %v", err)
	}
	if err := RequireKeyAndValue(setCmd, []string{"k", "v"}); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if err := RequireKeyAndValue(setCmd, []string{"k", "v", "w"}); dirmap.ExitCodeForError(err) != dirmap.ExitUsageError {
		t.Errorf("Expected usage error for three args, got %v", err)
	}
}
