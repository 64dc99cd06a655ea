//go:generate ${TOOLS_PATH}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "SongRepository=SongRepository,PlaylistRepository=PlaylistRepository"
package domain

import (
	"context"
	"time"
)

const Name = "library"

const (
	PlaylistSourceUser    PlaylistSource = "user"
	PlaylistSourceSpotify PlaylistSource = "spotify"
	PlaylistSourceYouTube PlaylistSource = "youtube"
)

type (
	SongID         string
	PlaylistID     string
	PlaylistSource string
)

type Song struct {
	ID          SongID
	Title       string
	Artist      string
	Album       string
	Duration    time.Duration
	AlbumArtURL string
	SpotifyURL  *string
	YouTubeURL  *string
	Level       PracticeLevel
}

type Playlist struct {
	ID          PlaylistID
	Name        string
	Description string
	Source      PlaylistSource
	SongIDs     []SongID
}

type PlaylistSpec struct {
	Importable *bool
	Sources    []PlaylistSource
}

type SongRepository interface {
	FindAll(ctx context.Context) ([]Song, error)
}

type PlaylistRepository interface {
	Find(ctx context.Context, spec PlaylistSpec) ([]Playlist, error)
}
