package spotify

import (
	"fmt"

	spotifyapi "github.com/zmb3/spotify/v2"

	"github.com/morningfm/front/internal/domain"
)

// songFromTrack converts a Spotify track into a domain Song. Album images
// arrive ordered largest first; a track missing its artist or any of the
// three renditions is a malformed catalog answer and maps to
// *domain.MusicError.
func songFromTrack(track *spotifyapi.FullTrack) (domain.Song, error) {
	if len(track.Artists) == 0 {
		return domain.Song{}, &domain.MusicError{
			Message: fmt.Sprintf("track %s has no artists", track.ID),
		}
	}

	images := track.Album.Images
	if len(images) < 3 {
		return domain.Song{}, &domain.MusicError{
			Message: fmt.Sprintf("track %s has %d album images, want 3", track.ID, len(images)),
		}
	}

	return domain.Song{
		ID:            track.ID.String(),
		MusicProvider: domain.MusicProviderSpotify,
		Name:          track.Name,
		ArtistName:    track.Artists[0].Name,
		AlbumName:     track.Album.Name,
		ImageURLBySize: map[domain.ImageSize]string{
			domain.ImageSizeLarge:  images[0].URL,
			domain.ImageSizeMedium: images[1].URL,
			domain.ImageSizeSmall:  images[2].URL,
		},
	}, nil
}
