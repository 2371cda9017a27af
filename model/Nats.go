package model

// Message represents how NATS publish message
// should be
type Message struct {
	Type   string `json:"type"`
	Entity string `json:"entity"`
	Id     string `json:"id"`
}
