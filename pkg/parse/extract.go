package parse

import (
	"strings"

	wifiscan "github.com/wifilab/wifiscan/pkg"
)

// extractValue returns the text between the end of prefix and the first
// occurrence of terminator after it, or the rest of the line when
// terminator is "". The line must start with prefix and be strictly
// longer than it; otherwise, or when the terminator never appears,
// wifiscan.ErrNoValue is returned.
func extractValue(line, prefix, terminator string) (string, error) {
	if len(line) <= len(prefix) || !strings.HasPrefix(line, prefix) {
		return "", wifiscan.ErrNoValue
	}
	rest := line[len(prefix):]
	if terminator == "" {
		return rest, nil
	}
	end := strings.Index(rest, terminator)
	if end < 0 {
		return "", wifiscan.ErrNoValue
	}
	return rest[:end], nil
}
