package helpers

import (
	"log"
	"os"

	"github.com/nats-io/nats.go"
)

// Publisher wraps the NATS connection. A publisher without a
// connection drops every message, so the server runs fine
// without a broker
type Publisher struct {
	conn *nats.Conn
}

// InitNATS connects to NATS when NATS_URL is set
func InitNATS() *Publisher {
	url := os.Getenv("NATS_URL")
	if url == "" {
		return &Publisher{}
	}

	connection, err := nats.Connect(url)
	if err != nil {
		log.Printf("Cannot connect to %v: %v", url, err)
		return &Publisher{}
	}

	return &Publisher{conn: connection}
}

// Publish allows publishing message on NATS
func (p *Publisher) Publish(subject string, message []byte) {
	if p == nil || p.conn == nil {
		return
	}

	if err := p.conn.Publish(subject, message); err != nil {
		log.Printf("(Publish) Failed to send message to %v, got error: %v", subject, err)
	}
}
