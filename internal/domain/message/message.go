package message

import "time"

type Source string

const (
	SourceWhatsApp Source = "WhatsApp"
	SourceWebsite  Source = "Website"
)

func (s Source) IsValid() bool {
	switch s {
	case SourceWhatsApp, SourceWebsite:
		return true
	default:
		return false
	}
}

type Message struct {
	ID            string
	CustomerName  string
	CustomerPhone string
	Body          string
	Source        Source
	Read          bool
	CreatedAt     time.Time
}
