package sql

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/klwxsrx/repertoire-hero/internal/library/domain"
	pkgsql "github.com/klwxsrx/repertoire-hero/pkg/sql"
)

type songRepository struct {
	db      pkgsql.Client
	builder sq.StatementBuilderType
}

func NewSongRepository(db pkgsql.Client, builder sq.StatementBuilderType) domain.SongRepository {
	return songRepository{db: db, builder: builder}
}

func (r songRepository) FindAll(ctx context.Context) ([]domain.Song, error) {
	query, args, err := r.builder.
		Select(
			"id",
			"title",
			"artist",
			"album",
			"duration_seconds",
			"album_art_url",
			"spotify_url",
			"youtube_url",
			"level",
		).
		From("song").
		OrderBy("position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []sqlxSong
	err = r.db.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Song, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toDomain())
	}

	return result, nil
}

type sqlxSong struct {
	ID              string  `db:"id"`
	Title           string  `db:"title"`
	Artist          string  `db:"artist"`
	Album           string  `db:"album"`
	DurationSeconds int     `db:"duration_seconds"`
	AlbumArtURL     string  `db:"album_art_url"`
	SpotifyURL      *string `db:"spotify_url"`
	YouTubeURL      *string `db:"youtube_url"`
	Level           int     `db:"level"`
}

func (s sqlxSong) toDomain() domain.Song {
	return domain.Song{
		ID:          domain.SongID(s.ID),
		Title:       s.Title,
		Artist:      s.Artist,
		Album:       s.Album,
		Duration:    time.Duration(s.DurationSeconds) * time.Second,
		AlbumArtURL: s.AlbumArtURL,
		SpotifyURL:  s.SpotifyURL,
		YouTubeURL:  s.YouTubeURL,
		Level:       domain.PracticeLevel(s.Level),
	}
}
