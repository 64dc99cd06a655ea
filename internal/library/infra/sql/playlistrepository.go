package sql

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/klwxsrx/repertoire-hero/internal/library/domain"
	pkgsql "github.com/klwxsrx/repertoire-hero/pkg/sql"
)

type playlistRepository struct {
	db      pkgsql.Client
	builder sq.StatementBuilderType
}

func NewPlaylistRepository(db pkgsql.Client, builder sq.StatementBuilderType) domain.PlaylistRepository {
	return playlistRepository{db: db, builder: builder}
}

func (r playlistRepository) Find(ctx context.Context, spec domain.PlaylistSpec) ([]domain.Playlist, error) {
	query, args, err := r.buildFindQuery(spec).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []sqlxPlaylist
	err = r.db.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []domain.Playlist{}, nil
	}

	songIDs, err := r.findSongIDs(ctx, rows)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Playlist, 0, len(rows))
	for _, row := range rows {
		ids := songIDs[row.ID]
		if ids == nil {
			ids = []domain.SongID{}
		}

		result = append(result, domain.Playlist{
			ID:          domain.PlaylistID(row.ID),
			Name:        row.Name,
			Description: row.Description,
			Source:      domain.PlaylistSource(row.Source),
			SongIDs:     ids,
		})
	}

	return result, nil
}

func (r playlistRepository) buildFindQuery(spec domain.PlaylistSpec) sq.SelectBuilder {
	qb := r.builder.
		Select("id", "name", "description", "source").
		From("playlist").
		OrderBy("position")
	if spec.Importable != nil {
		qb = qb.Where(sq.Eq{"importable": *spec.Importable})
	}
	if len(spec.Sources) > 0 {
		sources := make([]string, 0, len(spec.Sources))
		for _, source := range spec.Sources {
			sources = append(sources, string(source))
		}
		qb = qb.Where(sq.Eq{"source": sources})
	}

	return qb
}

func (r playlistRepository) findSongIDs(ctx context.Context, playlists []sqlxPlaylist) (map[string][]domain.SongID, error) {
	playlistIDs := make([]string, 0, len(playlists))
	for _, playlist := range playlists {
		playlistIDs = append(playlistIDs, playlist.ID)
	}

	query, args, err := r.builder.
		Select("playlist_id", "song_id").
		From("playlist_song").
		Where(sq.Eq{"playlist_id": playlistIDs}).
		OrderBy("playlist_id", "position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []sqlxPlaylistSong
	err = r.db.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select playlist songs: %w", err)
	}

	result := make(map[string][]domain.SongID, len(playlists))
	for _, row := range rows {
		result[row.PlaylistID] = append(result[row.PlaylistID], domain.SongID(row.SongID))
	}

	return result, nil
}

type sqlxPlaylist struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Source      string `db:"source"`
}

type sqlxPlaylistSong struct {
	PlaylistID string `db:"playlist_id"`
	SongID     string `db:"song_id"`
}
