// Package dataloader provides the per-request loader that batches and
// deduplicates music-catalog lookups issued while resolving Listen.song
// fields. Loaders are created per request: their cache must not outlive it.
package dataloader

import (
	"context"
	"sync"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/morningfm/front/internal/domain"
)

const (
	maxBatch = 50
	wait     = 2 * time.Millisecond
)

type musicGateway interface {
	FetchSongOfListen(ctx context.Context, listen domain.Listen) (domain.Song, error)
}

// SongKey identifies one catalog lookup. Two listens of the same song share
// a key and therefore a single fetch within a request.
type SongKey struct {
	SongID   string
	Provider domain.MusicProvider
}

// Loaders holds the per-request DataLoader instances.
type Loaders struct {
	SongByListen *dataloader.Loader[SongKey, domain.Song]
}

// NewLoaders creates a fresh set of loaders backed by the music gateway.
func NewLoaders(music musicGateway) *Loaders {
	return &Loaders{
		SongByListen: dataloader.NewBatchedLoader(
			newSongBatchFn(music),
			dataloader.WithWait[SongKey, domain.Song](wait),
			dataloader.WithBatchCapacity[SongKey, domain.Song](maxBatch),
		),
	}
}

// newSongBatchFn fans a batch of keys out to the gateway concurrently.
// Results and errors stay per-key: one failed lookup never taints its
// batch-mates.
func newSongBatchFn(music musicGateway) dataloader.BatchFunc[SongKey, domain.Song] {
	return func(ctx context.Context, keys []SongKey) []*dataloader.Result[domain.Song] {
		results := make([]*dataloader.Result[domain.Song], len(keys))

		var wg sync.WaitGroup
		for i, key := range keys {
			wg.Add(1)
			go func(i int, key SongKey) {
				defer wg.Done()
				// The catalog lookup only needs the song reference fields.
				song, err := music.FetchSongOfListen(ctx, domain.Listen{
					SongID:       key.SongID,
					SongProvider: key.Provider,
				})
				results[i] = &dataloader.Result[domain.Song]{Data: song, Error: err}
			}(i, key)
		}
		wg.Wait()

		return results
	}
}

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context. Panics if absent, which
// indicates the transport forgot to install per-request loaders.
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context")
	}
	return l
}
