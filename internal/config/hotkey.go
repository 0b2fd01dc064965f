package config

import (
	"fmt"
	"strings"
)

// Modifier flags, numerically identical to the MOD_* values
// RegisterHotKey expects.
const (
	ModAlt   uint16 = 0x0001
	ModCtrl  uint16 = 0x0002
	ModShift uint16 = 0x0004
	ModWin   uint16 = 0x0008
)

// Combo is a parsed hotkey combination: modifier flags plus a
// virtual-key code.
type Combo struct {
	Modifiers uint16
	Key       uint16

	keyName string
}

// namedKeys maps key tokens that are not plain letters or digits to
// their virtual-key codes.
var namedKeys = map[string]uint16{
	"space":  0x20,
	"pause":  0x13,
	"insert": 0x2D,
	"delete": 0x2E,
	"home":   0x24,
	"end":    0x23,
	"pgup":   0x21,
	"pgdn":   0x22,
	"up":     0x26,
	"down":   0x28,
	"left":   0x25,
	"right":  0x27,
}

// ParseCombo parses a combination like "ctrl+alt+p" or "win+shift+f9".
// At least one modifier and exactly one key are required; a hotkey
// without modifiers would swallow ordinary typing.
func ParseCombo(s string) (Combo, error) {
	var c Combo

	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "+")
	for _, p := range parts {
		p = strings.TrimSpace(p)
		switch p {
		case "ctrl", "control":
			c.Modifiers |= ModCtrl
		case "alt":
			c.Modifiers |= ModAlt
		case "shift":
			c.Modifiers |= ModShift
		case "win", "super":
			c.Modifiers |= ModWin
		case "":
			return Combo{}, fmt.Errorf("invalid hotkey combo %q", s)
		default:
			if c.Key != 0 {
				return Combo{}, fmt.Errorf("invalid hotkey combo %q: more than one key", s)
			}
			vk, err := parseKey(p)
			if err != nil {
				return Combo{}, fmt.Errorf("invalid hotkey combo %q: %w", s, err)
			}
			c.Key = vk
			c.keyName = p
		}
	}

	if c.Modifiers == 0 {
		return Combo{}, fmt.Errorf("invalid hotkey combo %q: at least one modifier required", s)
	}
	if c.Key == 0 {
		return Combo{}, fmt.Errorf("invalid hotkey combo %q: no key", s)
	}
	return c, nil
}

func parseKey(p string) (uint16, error) {
	if vk, ok := namedKeys[p]; ok {
		return vk, nil
	}
	if len(p) == 1 {
		ch := p[0]
		switch {
		case ch >= 'a' && ch <= 'z':
			return uint16(ch - 'a' + 'A'), nil
		case ch >= '0' && ch <= '9':
			return uint16(ch), nil
		}
	}
	if strings.HasPrefix(p, "f") {
		var n int
		if _, err := fmt.Sscanf(p, "f%d", &n); err == nil && n >= 1 && n <= 24 {
			return uint16(0x70 + n - 1), nil
		}
	}
	return 0, fmt.Errorf("unknown key %q", p)
}

// String renders the combo in canonical ctrl+alt+key form.
func (c Combo) String() string {
	var parts []string
	if c.Modifiers&ModCtrl != 0 {
		parts = append(parts, "ctrl")
	}
	if c.Modifiers&ModAlt != 0 {
		parts = append(parts, "alt")
	}
	if c.Modifiers&ModShift != 0 {
		parts = append(parts, "shift")
	}
	if c.Modifiers&ModWin != 0 {
		parts = append(parts, "win")
	}
	parts = append(parts, c.keyName)
	return strings.Join(parts, "+")
}
