package server

import "testing"

func TestStringParam(t *testing.T) {
	params := map[string]interface{}{"sort": "os", "hwnd": 42.0}

	if got := StringParam(params, "sort", "title"); got != "os" {
		t.Errorf("got %q, want %q", got, "os")
	}
	if got := StringParam(params, "missing", "title"); got != "title" {
		t.Errorf("default: got %q, want %q", got, "title")
	}
	if got := StringParam(params, "hwnd", "x"); got != "x" {
		t.Errorf("wrong type should fall back to default, got %q", got)
	}
}

func TestIntParam(t *testing.T) {
	params := map[string]interface{}{"hwnd": 131074.0, "n": 7, "s": "x"}

	if got := IntParam(params, "hwnd", 0); got != 131074 {
		t.Errorf("float64: got %d, want 131074", got)
	}
	if got := IntParam(params, "n", 0); got != 7 {
		t.Errorf("int: got %d, want 7", got)
	}
	if got := IntParam(params, "s", 3); got != 3 {
		t.Errorf("wrong type: got %d, want 3", got)
	}
	if got := IntParam(params, "missing", 5); got != 5 {
		t.Errorf("default: got %d, want 5", got)
	}
}

func TestBoolParam(t *testing.T) {
	params := map[string]interface{}{"pinned_only": true}

	if !BoolParam(params, "pinned_only", false) {
		t.Error("got false, want true")
	}
	if BoolParam(params, "missing", false) {
		t.Error("default: got true, want false")
	}
}
