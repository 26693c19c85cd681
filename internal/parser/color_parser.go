package parser

import (
	"fmt"
	"regexp"
	"strings"
)

var colorRegex = regexp.MustCompile(`^#?([0-9A-F]{6}|[0-9A-F]{3})$`)

// NormalizeColor normalizes hex colors to uppercase #RRGGBB format
// Accepts formats like:
// - "#329ba4", "329BA4" -> "#329BA4"
// - "#abc" -> "#AABBCC"
func NormalizeColor(color string) (string, error) {
	color = strings.ToUpper(strings.TrimSpace(color))
	m := colorRegex.FindStringSubmatch(color)
	if m == nil {
		return "", fmt.Errorf("invalid color %q. Use: #RRGGBB", color)
	}

	hex := m[1]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	return "#" + hex, nil
}

// IsValidColor checks if a string is a hex color NormalizeColor accepts
func IsValidColor(color string) bool {
	_, err := NormalizeColor(color)
	return err == nil
}
