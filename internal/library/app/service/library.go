package service

import (
	"context"
	"fmt"

	"github.com/klwxsrx/repertoire-hero/internal/library/domain"
)

type ImportablePlaylists map[domain.PlaylistSource][]domain.Playlist

type Library interface {
	ListSongs(ctx context.Context) ([]domain.Song, error)
	ListPlaylists(ctx context.Context) ([]domain.Playlist, error)
	ListImportablePlaylists(ctx context.Context) (ImportablePlaylists, error)
}

type library struct {
	songs     domain.SongRepository
	playlists domain.PlaylistRepository
}

func NewLibrary(songs domain.SongRepository, playlists domain.PlaylistRepository) Library {
	return library{
		songs:     songs,
		playlists: playlists,
	}
}

func (l library) ListSongs(ctx context.Context) ([]domain.Song, error) {
	songs, err := l.songs.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("find songs: %w", err)
	}

	return songs, nil
}

func (l library) ListPlaylists(ctx context.Context) ([]domain.Playlist, error) {
	importable := false
	playlists, err := l.playlists.Find(ctx, domain.PlaylistSpec{
		Importable: &importable,
	})
	if err != nil {
		return nil, fmt.Errorf("find playlists: %w", err)
	}

	return playlists, nil
}

// ListImportablePlaylists groups by source, every external source is present even when empty.
func (l library) ListImportablePlaylists(ctx context.Context) (ImportablePlaylists, error) {
	importable := true
	sources := []domain.PlaylistSource{domain.PlaylistSourceSpotify, domain.PlaylistSourceYouTube}
	playlists, err := l.playlists.Find(ctx, domain.PlaylistSpec{
		Importable: &importable,
		Sources:    sources,
	})
	if err != nil {
		return nil, fmt.Errorf("find importable playlists: %w", err)
	}

	result := make(ImportablePlaylists, len(sources))
	for _, source := range sources {
		result[source] = []domain.Playlist{}
	}
	for _, playlist := range playlists {
		result[playlist.Source] = append(result[playlist.Source], playlist)
	}

	return result, nil
}
