package listens

import (
	"fmt"

	"github.com/morningfm/front/internal/domain"
	"github.com/morningfm/front/internal/gateway"
)

// listenPayload is one listen as the listens service serializes it.
type listenPayload struct {
	ID            string  `json:"id"`
	SongID        string  `json:"song_id"`
	SongProvider  string  `json:"song_provider"`
	ListenerName  string  `json:"listener_name"`
	ListenTimeUTC string  `json:"listen_time_utc"`
	IANATimezone  string  `json:"iana_timezone"`
	Note          *string `json:"note"`
}

// listensPayload is the page envelope of GET /listens.
type listensPayload struct {
	Items []listenPayload `json:"items"`
}

// submitPayload is the body of POST /listens.
type submitPayload struct {
	SongID       string  `json:"song_id"`
	SongProvider string  `json:"song_provider"`
	ListenerName string  `json:"listener_name"`
	Note         *string `json:"note"`
	IANATimezone string  `json:"iana_timezone"`
}

// errorPayload is the body of any non-success listens service response.
type errorPayload struct {
	Message string `json:"message"`
}

func (p listenPayload) toDomain() (domain.Listen, error) {
	provider, err := domain.ParseMusicProvider(p.SongProvider)
	if err != nil {
		return domain.Listen{}, fmt.Errorf("listens: listen %s: %w", p.ID, err)
	}

	listenTime, err := gateway.ParseWireTime(p.ListenTimeUTC)
	if err != nil {
		return domain.Listen{}, fmt.Errorf("listens: listen %s: %w", p.ID, err)
	}

	return domain.Listen{
		ID:            p.ID,
		SongID:        p.SongID,
		SongProvider:  provider,
		ListenerName:  p.ListenerName,
		ListenTimeUTC: listenTime,
		IANATimezone:  p.IANATimezone,
		Note:          p.Note,
	}, nil
}
