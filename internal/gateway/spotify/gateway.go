// Package spotify implements the music-catalog gateway on top of the
// Spotify Web API.
package spotify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	spotifyapi "github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/morningfm/front/internal/domain"
)

// Gateway is the production music-catalog gateway. The bearer token is
// acquired once at construction and shared read-only for the gateway's
// lifetime; an expired token just shows up as a failed catalog call.
type Gateway struct {
	client *spotifyapi.Client
	log    *slog.Logger
}

// NewGateway exchanges the client credentials for a bearer token and
// returns a Gateway holding an authenticated client. The exchange is
// eager: if it fails there is no gateway, and construction fails outright.
func NewGateway(ctx context.Context, clientID, clientSecret string, logger *slog.Logger) (*Gateway, error) {
	cfg := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     spotifyauth.TokenURL,
	}

	token, err := cfg.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("spotify: token exchange: %w", err)
	}

	httpClient := spotifyauth.New().Client(ctx, token)
	return NewGatewayWithClient(spotifyapi.New(httpClient), logger), nil
}

// NewGatewayWithClient wraps an already-authenticated client (for testing).
func NewGatewayWithClient(client *spotifyapi.Client, logger *slog.Logger) *Gateway {
	return &Gateway{
		client: client,
		log:    logger.With("gateway", "spotify"),
	}
}

// FetchSongOfListen fetches the track a listen refers to. Spotify API
// failures and malformed track payloads surface as *domain.MusicError;
// transport failures stay plain errors.
func (g *Gateway) FetchSongOfListen(ctx context.Context, listen domain.Listen) (domain.Song, error) {
	g.log.DebugContext(ctx, "spotify request", slog.String("song_id", listen.SongID))

	track, err := g.client.GetTrack(ctx, spotifyapi.ID(listen.SongID))
	if err != nil {
		return domain.Song{}, classifyTrackError(listen.SongID, err)
	}

	return songFromTrack(track)
}

// classifyTrackError maps Spotify API errors (the service answered, with a
// non-success status) to *domain.MusicError. Anything else, network
// failures in particular, stays untyped so it escalates.
func classifyTrackError(songID string, err error) error {
	var apiErr spotifyapi.Error
	if errors.As(err, &apiErr) {
		return &domain.MusicError{Message: apiErr.Message}
	}
	return fmt.Errorf("spotify: get track %s: %w", songID, err)
}
