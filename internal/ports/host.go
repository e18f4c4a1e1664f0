package ports

type Host interface {
	EffectiveUserID() int
	Hostname() (string, error)
}
