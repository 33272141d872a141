package geometry

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// TextWidth returns the number of terminal cells s occupies.
func TextWidth(s string) int {
	return runewidth.StringWidth(s)
}

// TextSize returns the widest line and the line count of a multi-line string.
func TextSize(s string) (int, int) {
	lines := strings.Split(s, "\n")
	widest := 0
	for _, line := range lines {
		widest = max(widest, TextWidth(line))
	}
	return widest, len(lines)
}

// Wrap greedily breaks text into lines no wider than maxWidth cells.
//
// A line ends at the last occurrence of sep that keeps it within budget; the
// separator itself is dropped. Without such an occurrence the line ends at the
// last space within budget. When neither exists the next token is emitted on
// its own even though it is wider than maxWidth.
func Wrap(text, sep string, maxWidth int) []string {
	if text == "" {
		return nil
	}
	if maxWidth < 1 {
		maxWidth = 1
	}
	var lines []string
	rest := text
	for rest != "" {
		if TextWidth(rest) <= maxWidth {
			lines = append(lines, rest)
			break
		}
		if idx := lastBreakWithin(rest, sep, maxWidth); idx > 0 {
			lines = append(lines, strings.TrimRight(rest[:idx], " "))
			rest = strings.TrimLeft(rest[idx+len(sep):], " ")
			continue
		}
		if idx := lastBreakWithin(rest, " ", maxWidth); idx > 0 {
			lines = append(lines, strings.TrimRight(rest[:idx], " "))
			rest = strings.TrimLeft(rest[idx+1:], " ")
			continue
		}
		end, skip := firstBreak(rest, sep)
		if end < 0 {
			lines = append(lines, rest)
			break
		}
		lines = append(lines, strings.TrimRight(rest[:end], " "))
		rest = strings.TrimLeft(rest[end+skip:], " ")
	}
	return lines
}

// WrapLines wraps every newline-separated paragraph of text independently.
func WrapLines(text, sep string, maxWidth int) []string {
	var out []string
	for _, paragraph := range strings.Split(text, "\n") {
		wrapped := Wrap(paragraph, sep, maxWidth)
		if len(wrapped) == 0 {
			out = append(out, "")
			continue
		}
		out = append(out, wrapped...)
	}
	return out
}

// lastBreakWithin finds the byte offset of the last sep occurrence whose
// preceding text fits in maxWidth cells. Offset zero never counts as a break.
func lastBreakWithin(s, sep string, maxWidth int) int {
	if sep == "" {
		return -1
	}
	best := -1
	offset := 0
	for {
		i := strings.Index(s[offset:], sep)
		if i < 0 {
			return best
		}
		idx := offset + i
		if idx > 0 {
			if TextWidth(strings.TrimRight(s[:idx], " ")) > maxWidth {
				return best
			}
			best = idx
		}
		offset = idx + len(sep)
		if offset >= len(s) {
			return best
		}
	}
}

// firstBreak returns the first separator or space after the leading token,
// along with the number of bytes to skip past it.
func firstBreak(s, sep string) (int, int) {
	end, skip := -1, 0
	if sep != "" {
		if i := strings.Index(s, sep); i > 0 {
			end, skip = i, len(sep)
		}
	}
	if i := strings.Index(s, " "); i > 0 && (end < 0 || i < end) {
		end, skip = i, 1
	}
	return end, skip
}
