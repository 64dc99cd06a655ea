package http

import (
	"github.com/klwxsrx/repertoire-hero/internal/library/app/service"
	"github.com/klwxsrx/repertoire-hero/internal/library/domain"
)

type SongOut struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Artist      string  `json:"artist"`
	Album       string  `json:"album"`
	Duration    int     `json:"duration"`
	AlbumArtURL string  `json:"albumArtUrl"`
	SpotifyURL  *string `json:"spotifyUrl,omitempty"`
	YouTubeURL  *string `json:"youtubeUrl,omitempty"`
	Level       int     `json:"level"`
}

type PlaylistOut struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Source      string   `json:"source"`
	SongIDs     []string `json:"songIds"`
}

type PracticeLevelOut struct {
	Level int    `json:"level"`
	Title string `json:"title"`
}

type SongsOut struct {
	Songs []SongOut `json:"songs"`
}

type PlaylistsOut struct {
	Playlists []PlaylistOut `json:"playlists"`
}

type ImportablePlaylistsOut struct {
	Spotify []PlaylistOut `json:"spotify"`
	YouTube []PlaylistOut `json:"youtube"`
}

type PracticeLevelsOut struct {
	Levels []PracticeLevelOut `json:"levels"`
}

func toSongsOut(songs []domain.Song) SongsOut {
	result := make([]SongOut, 0, len(songs))
	for _, song := range songs {
		result = append(result, SongOut{
			ID:          string(song.ID),
			Title:       song.Title,
			Artist:      song.Artist,
			Album:       song.Album,
			Duration:    int(song.Duration.Seconds()),
			AlbumArtURL: song.AlbumArtURL,
			SpotifyURL:  song.SpotifyURL,
			YouTubeURL:  song.YouTubeURL,
			Level:       int(song.Level),
		})
	}

	return SongsOut{Songs: result}
}

func toPlaylistsOut(playlists []domain.Playlist) []PlaylistOut {
	result := make([]PlaylistOut, 0, len(playlists))
	for _, playlist := range playlists {
		songIDs := make([]string, 0, len(playlist.SongIDs))
		for _, id := range playlist.SongIDs {
			songIDs = append(songIDs, string(id))
		}

		result = append(result, PlaylistOut{
			ID:          string(playlist.ID),
			Name:        playlist.Name,
			Description: playlist.Description,
			Source:      string(playlist.Source),
			SongIDs:     songIDs,
		})
	}

	return result
}

func toImportablePlaylistsOut(playlists service.ImportablePlaylists) ImportablePlaylistsOut {
	return ImportablePlaylistsOut{
		Spotify: toPlaylistsOut(playlists[domain.PlaylistSourceSpotify]),
		YouTube: toPlaylistsOut(playlists[domain.PlaylistSourceYouTube]),
	}
}

func toPracticeLevelsOut(levels []domain.PracticeLevel) PracticeLevelsOut {
	result := make([]PracticeLevelOut, 0, len(levels))
	for _, level := range levels {
		result = append(result, PracticeLevelOut{
			Level: int(level),
			Title: level.Title(),
		})
	}

	return PracticeLevelsOut{Levels: result}
}
