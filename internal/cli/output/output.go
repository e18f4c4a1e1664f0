package output

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Destinations for regular and diagnostic output. Tests swap them for buffers.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// ColorsEnabled returns true if terminal colors should be used.
// Respects NO_COLOR environment variable (https://no-color.org/)
func ColorsEnabled() bool {
	if _, noColor := os.LookupEnv("NO_COLOR"); noColor {
		return false
	}
	f, ok := stdout.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// ANSI color codes
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
	white  = "\033[37m"
)

// Symbols for CLI output (ASCII-compatible)
const (
	SymbolSuccess = "+"
	SymbolError   = "x"
	SymbolWarning = "!"
	SymbolInfo    = "*"
	SymbolArrow   = "->"
	SymbolBullet  = "-"
)

func styled(text string, codes ...string) string {
	if !ColorsEnabled() {
		return text
	}
	prefix := ""
	for _, code := range codes {
		prefix += code
	}
	return prefix + text + reset
}

func Bold(text string) string      { return styled(text, bold) }
func Dim(text string) string       { return styled(text, dim) }
func Success(text string) string   { return styled(text, green) }
func Error(text string) string     { return styled(text, red) }
func Warning(text string) string   { return styled(text, yellow) }
func Info(text string) string      { return styled(text, cyan) }
func Header(text string) string    { return styled(text, bold, white) }
func Secondary(text string) string { return styled(text, dim, cyan) }

func PrintHeader(text string) {
	fmt.Fprintln(stdout, Header(text))
}

func PrintSuccess(message string) {
	fmt.Fprintf(stdout, "%s %s\n", Success(SymbolSuccess), Success(message))
}

// PrintError writes to stderr.
func PrintError(message string) {
	fmt.Fprintf(stderr, "%s %s\n", Error(SymbolError), Error(message))
}

// PrintWarning writes to stderr so warnings never end up in piped output.
func PrintWarning(message string) {
	fmt.Fprintf(stderr, "%s %s\n", Warning(SymbolWarning), Warning(message))
}

func PrintInfo(message string) {
	fmt.Fprintf(stdout, "%s %s\n", Info(SymbolInfo), Info(message))
}

// PrintStep prints an indented arrow line, used under a header or recipe name.
func PrintStep(message string) {
	fmt.Fprintf(stdout, "  %s %s\n", SymbolArrow, message)
}

func PrintSecondary(message string) {
	fmt.Fprintf(stdout, "  %s %s\n", SymbolArrow, Secondary(message))
}

// Plural returns the singular or plural form based on count
func Plural(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}
