package domain

import "time"

// Message is a host mail item addressed to a user. Read state is tracked as
// a per-user flag, not on the message itself.
type Message struct {
	ID      string
	Sender  string
	Subject string
	Body    string
	SentAt  time.Time
}

type JournalEntry struct {
	ID        string
	Title     string
	Body      string
	WrittenAt time.Time
}

type Player struct {
	ID     string
	Name   string
	Color  string
	Online bool
}
