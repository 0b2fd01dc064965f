package output

import (
	"bytes"
	"os"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/pinwin/pinwin/internal/model"
)

func capture(t *testing.T, fn func() error) string {
	t.Helper()
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	err := fn()
	w.Close()
	os.Stdout = old

	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestPrintYAML(t *testing.T) {
	wins := []model.Window{
		{Handle: 131074, Title: "Notepad", Pinned: true},
		{Handle: 65538, Title: "Calculator"},
	}

	out := capture(t, func() error { return PrintYAML(wins) })

	if bytes.Count([]byte(out), []byte("\n")) <= 1 {
		t.Errorf("YAML output should be multi-line, got:\n%s", out)
	}

	var decoded []model.Window
	if err := yaml.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("windows: got %d, want 2", len(decoded))
	}
	if decoded[0].Title != "Notepad" {
		t.Errorf("title: got %q, want %q", decoded[0].Title, "Notepad")
	}
	if !decoded[0].Pinned {
		t.Error("pinned flag lost in round trip")
	}
}

func TestWindow_OmitEmptyPinned(t *testing.T) {
	data, err := yaml.Marshal(model.Window{Handle: 42, Title: "Notepad"})
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]interface{}
	if err := yaml.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	if _, ok := m["pinned"]; ok {
		t.Error("false pinned should be omitted")
	}
	if m["hwnd"] != 42 {
		t.Errorf("hwnd: got %v, want 42", m["hwnd"])
	}
}

func TestPrint_FormatSwitch(t *testing.T) {
	orig := OutputFormat
	defer func() { OutputFormat = orig }()

	OutputFormat = FormatJSON
	out := capture(t, func() error { return Print(model.Window{Handle: 7, Title: "x"}) })
	if out == "" || out[0] != '{' {
		t.Errorf("expected JSON object, got: %s", out)
	}

	OutputFormat = Format("xml")
	if err := Print(struct{}{}); err == nil {
		t.Error("expected error for unsupported format")
	}
}
