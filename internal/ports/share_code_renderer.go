package ports

// ShareCodeRenderer turns a share link into a code printable on a terminal.
type ShareCodeRenderer interface {
	Render(link string) (string, error)
}
