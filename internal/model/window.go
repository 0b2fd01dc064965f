package model

// Handle is an opaque OS-assigned identifier for a top-level window
// (an HWND on Windows). A handle is only guaranteed valid for the
// duration of a single operation; the window may close between
// enumeration and a later call using its handle.
type Handle uintptr

// Window describes one visible top-level window.
//
// Descriptors are produced fresh by every enumeration and never
// persisted. Pinned is presentation state filled in by callers that
// decorate the list (menu checkmarks, `pinwin list`); the enumerator
// itself leaves it false.
type Window struct {
	Handle Handle `yaml:"hwnd"             json:"hwnd"`
	Title  string `yaml:"title"            json:"title"`
	Pinned bool   `yaml:"pinned,omitempty" json:"pinned,omitempty"`
}
