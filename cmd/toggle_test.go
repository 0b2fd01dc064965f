package cmd

import (
	"testing"
)

func TestToggleCommand_Flags(t *testing.T) {
	flags := toggleCmd.Flags()

	tests := []struct {
		name     string
		flagType string
	}{
		{"hwnd", "string"},
		{"foreground", "bool"},
		{"pretty", "bool"},
	}

	for _, tt := range tests {
		f := flags.Lookup(tt.name)
		if f == nil {
			t.Errorf("expected flag %q not found", tt.name)
			continue
		}
		if f.Value.Type() != tt.flagType {
			t.Errorf("flag %q: expected type %q, got %q", tt.name, tt.flagType, f.Value.Type())
		}
	}
}

func TestToggleCommand_IsRegistered(t *testing.T) {
	for _, c := range rootCmd.Commands() {
		if c.Name() == "toggle" {
			return
		}
	}
	t.Error("toggle command not registered on root")
}

func TestPinnedCommand_Flags(t *testing.T) {
	if pinnedCmd.Flags().Lookup("hwnd") == nil {
		t.Error("expected flag \"hwnd\" not found on pinned")
	}
}

func TestServeCommand_Flags(t *testing.T) {
	if serveCmd.Flags().Lookup("transport") == nil {
		t.Error("expected flag \"transport\" not found on serve")
	}
	if serveCmd.Flags().Lookup("port") == nil {
		t.Error("expected flag \"port\" not found on serve")
	}
}
