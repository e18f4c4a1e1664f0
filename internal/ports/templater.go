package ports

// Templater renders recipe file templates, destinations and command
// arguments against the merged settings and secrets. name only labels errors.
type Templater interface {
	Render(template string, name string, values map[string]interface{}) (string, error)
}
