// Package gateway defines the capability contracts for the three backend
// services the front talks to. Each gateway has exactly one production
// implementation (subpackages listens, spotify, sunlight) but is consumed
// through these interfaces so tests can substitute doubles.
package gateway

import (
	"context"
	"time"

	"github.com/morningfm/front/internal/domain"
)

// ListensGateway talks to the listen-log service.
type ListensGateway interface {
	// FetchListen fetches one listen by id. A non-success backend
	// response surfaces as a *domain.ListensError.
	FetchListen(ctx context.Context, id string) (domain.Listen, error)

	// FetchListens fetches up to limit listens in the given scan order,
	// bounded by the optional before/after cursors. Both bounds are
	// exclusive of the endpoint's own listen.
	FetchListens(ctx context.Context, limit int, order domain.SortOrder, before, after *time.Time) ([]domain.Listen, error)

	// SubmitListen submits one listen. The backend is authoritative on
	// submission policy (for example the daytime-only rule); any rejection
	// surfaces as a *domain.ListensError with the backend's message.
	SubmitListen(ctx context.Context, input domain.ListenInput) (domain.Listen, error)
}

// MusicGateway looks up track details in a music catalog.
type MusicGateway interface {
	// FetchSongOfListen fetches the song a listen refers to. Only the
	// song reference fields of the listen (SongID, SongProvider) are
	// consulted. Catalog failures surface as *domain.MusicError.
	FetchSongOfListen(ctx context.Context, listen domain.Listen) (domain.Song, error)
}

// SunlightGateway fetches sunrise/sunset windows.
type SunlightGateway interface {
	FetchSunlightWindow(ctx context.Context, ianaTimezone string, onDate time.Time) (domain.SunlightWindow, error)
}

// Set is the bag of gateway handles one request resolves against. It is
// immutable and safe to share across requests: no gateway holds
// request-scoped mutable state.
type Set struct {
	Listens  ListensGateway
	Music    MusicGateway
	Sunlight SunlightGateway
}
