package pin

import (
	"sort"
	"strings"

	"github.com/pinwin/pinwin/internal/model"
	"github.com/pinwin/pinwin/internal/platform"
)

// ListWindows returns a descriptor for every visible, titled, non-tool
// top-level window, in OS enumeration order.
//
// Descriptors are built fresh on every call; nothing is cached between
// calls. When the OS enumeration itself fails the result is an empty
// list, so callers degrade to "no windows found" instead of failing.
func ListWindows(r platform.Reader) []model.Window {
	handles, err := r.Enumerate()
	if err != nil {
		return []model.Window{}
	}

	wins := make([]model.Window, 0, len(handles))
	for _, h := range handles {
		if !r.IsVisible(h) {
			continue
		}
		if r.IsToolWindow(h) {
			continue
		}
		title := r.Title(h)
		if title == "" {
			continue
		}
		wins = append(wins, model.Window{Handle: h, Title: title})
	}
	return wins
}

// SortWindows orders a descriptor list for display. SortOS leaves the
// enumeration order untouched.
func SortWindows(wins []model.Window, mode platform.SortMode) {
	if mode != platform.SortTitle {
		return
	}
	sort.SliceStable(wins, func(i, j int) bool {
		return strings.ToLower(wins[i].Title) < strings.ToLower(wins[j].Title)
	})
}
