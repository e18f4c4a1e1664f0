package progress

import (
	"os"
	"strings"

	"golang.org/x/term"
)

type terminalCapabilities struct {
	supportsANSI  bool
	terminalWidth int
}

func detectCapabilities() terminalCapabilities {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 80
	}
	return terminalCapabilities{
		supportsANSI:  os.Getenv("TERM") != "dumb",
		terminalWidth: width,
	}
}

// clearLine returns the sequence that blanks the current line and returns the cursor.
func clearLine(caps terminalCapabilities) string {
	if caps.supportsANSI {
		return "\033[2K\r"
	}
	return "\r" + strings.Repeat(" ", caps.terminalWidth) + "\r"
}

// truncateToWidth cuts s to width visible characters. ANSI escape sequences
// do not count; a reset is appended when the text was cut.
func truncateToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}

	var result strings.Builder
	visibleLen := 0
	inEscape := false
	truncated := false

	for _, r := range s {
		if r == '\033' {
			inEscape = true
			result.WriteRune(r)
			continue
		}
		if inEscape {
			result.WriteRune(r)
			if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
				inEscape = false
			}
			continue
		}
		if visibleLen >= width {
			truncated = true
			break
		}
		result.WriteRune(r)
		visibleLen++
	}

	if truncated && !inEscape {
		result.WriteString("\033[0m")
	}
	return result.String()
}
