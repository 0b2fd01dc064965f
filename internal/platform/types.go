package platform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pinwin/pinwin/internal/model"
)

// SortMode controls how collaborators order the window list for
// display. The enumerator itself always returns OS order.
type SortMode int

const (
	// SortTitle orders windows alphabetically by title.
	SortTitle SortMode = iota
	// SortOS keeps the OS enumeration order.
	SortOS
)

// ParseSortMode converts a string flag or config value to SortMode.
func ParseSortMode(s string) (SortMode, error) {
	switch strings.ToLower(s) {
	case "title", "":
		return SortTitle, nil
	case "os", "none":
		return SortOS, nil
	default:
		return SortTitle, fmt.Errorf("unknown sort mode: %q (expected title or os)", s)
	}
}

// ParseHandle parses a window handle from a flag value. Both decimal
// and 0x-prefixed hex are accepted, since tools print HWNDs either way.
func ParseHandle(s string) (model.Handle, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty window handle")
	}
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid window handle %q: %w", s, err)
	}
	return model.Handle(v), nil
}
