package domain

import "time"

// Listen is one submitted listen from the listen log. Immutable once
// fetched; identity is assigned by the listens service. ListenTimeUTC is a
// naive UTC timestamp and doubles as the pagination cursor.
type Listen struct {
	ID            string
	SongID        string
	SongProvider  MusicProvider
	ListenerName  string
	ListenTimeUTC time.Time
	IANATimezone  string
	Note          *string
}

// ListenInput is the submission payload. The listens service assigns both
// the id and the listen time (at submission, in UTC).
type ListenInput struct {
	SongID       string
	SongProvider MusicProvider
	ListenerName string
	Note         *string
	IANATimezone string
}
