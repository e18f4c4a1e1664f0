package ports

// TerminalInput provides methods for reading user input from the terminal.
type TerminalInput interface {
	// ReadPassword prompts for a password and returns the input without echoing to the terminal.
	ReadPassword(prompt string) (string, error)
	// ReadLine prompts for a single line of input. Validate may be nil.
	ReadLine(title string, description string, initial string, validate func(string) error) (string, error)
	// Confirm asks a yes/no question.
	Confirm(title string) (bool, error)
	// IsTerminal returns true if stdin is connected to a terminal.
	IsTerminal() bool
}
