package domain

import "fmt"

// MusicProvider identifies the catalog a song belongs to. It serializes
// to and from the wire as its symbolic name, never an ordinal.
type MusicProvider string

const (
	MusicProviderSpotify MusicProvider = "SPOTIFY"
)

func (p MusicProvider) String() string { return string(p) }

func (p MusicProvider) IsValid() bool {
	switch p {
	case MusicProviderSpotify:
		return true
	}
	return false
}

// ParseMusicProvider maps a wire name to a MusicProvider.
func ParseMusicProvider(s string) (MusicProvider, error) {
	p := MusicProvider(s)
	if !p.IsValid() {
		return "", fmt.Errorf("unknown music provider %q", s)
	}
	return p, nil
}

// SortOrder is the scan direction of a time-ordered listen fetch.
type SortOrder string

const (
	SortOrderAscending  SortOrder = "ASCENDING"
	SortOrderDescending SortOrder = "DESCENDING"
)

func (o SortOrder) String() string { return string(o) }

func (o SortOrder) IsValid() bool {
	switch o {
	case SortOrderAscending, SortOrderDescending:
		return true
	}
	return false
}

// ImageSize keys a song's album art by rendition size.
type ImageSize string

const (
	ImageSizeLarge  ImageSize = "LARGE"
	ImageSizeMedium ImageSize = "MEDIUM"
	ImageSizeSmall  ImageSize = "SMALL"
)

func (s ImageSize) String() string { return string(s) }
