package repository

import (
	"strings"
	"unicode/utf8"
)

const (
	// ReadmeMaxLength is the number of characters of README text kept in a
	// Summary.
	ReadmeMaxLength = 2048

	// TruncationMarker is appended to README text cut at ReadmeMaxLength.
	TruncationMarker = "... (truncated)"
)

// TruncateReadme shortens text longer than ReadmeMaxLength characters. The
// cut happens at the last line break before the limit, followed by the
// marker on its own line. Without such a line break the text is cut at the
// limit and the marker is appended directly. Lengths are counted in runes.
func TruncateReadme(text string) string {
	if utf8.RuneCountInString(text) <= ReadmeMaxLength {
		return text
	}

	head := string([]rune(text)[:ReadmeMaxLength])
	if pos := strings.LastIndexByte(head, '\n'); pos >= 0 {
		return head[:pos] + "\n" + TruncationMarker
	}
	return head + TruncationMarker
}
