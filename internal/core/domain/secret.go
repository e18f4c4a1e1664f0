package domain

type Secret struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
