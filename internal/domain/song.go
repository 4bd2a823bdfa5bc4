package domain

// Song is a track looked up on demand from a music catalog. Never cached
// across requests; keyed by the song reference carried on a Listen.
type Song struct {
	ID             string
	MusicProvider  MusicProvider
	Name           string
	ArtistName     string
	AlbumName      string
	ImageURLBySize map[ImageSize]string
}
