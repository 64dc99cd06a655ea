package library

import (
	librarysql "github.com/klwxsrx/repertoire-hero/data/sql/library"
	"github.com/klwxsrx/repertoire-hero/internal/library/app/service"
	"github.com/klwxsrx/repertoire-hero/internal/library/domain"
	"github.com/klwxsrx/repertoire-hero/internal/library/infra/http"
	"github.com/klwxsrx/repertoire-hero/internal/library/infra/sql"
	commoncmd "github.com/klwxsrx/repertoire-hero/internal/pkg/cmd"
	pkghttp "github.com/klwxsrx/repertoire-hero/pkg/http"
	"github.com/klwxsrx/repertoire-hero/pkg/lazy"
	pkgsql "github.com/klwxsrx/repertoire-hero/pkg/sql"
)

type DependencyContainer struct {
	Library lazy.Loader[service.Library]

	listSongsHandler               lazy.Loader[http.ListSongsHandler]
	listPlaylistsHandler           lazy.Loader[http.ListPlaylistsHandler]
	listImportablePlaylistsHandler lazy.Loader[http.ListImportablePlaylistsHandler]
	listPracticeLevelsHandler      lazy.Loader[http.ListPracticeLevelsHandler]
}

func NewDependencyContainer(
	db lazy.Loader[pkgsql.Database],
	dbMigrations lazy.Loader[commoncmd.SQLMigrations],
) *DependencyContainer {
	migratedDB := lazy.New(func() (pkgsql.Database, error) {
		dbMigrations.MustLoad().MustRegister(librarysql.Migrations)
		return db.MustLoad(), nil
	})

	library := libraryProvider(
		songRepositoryProvider(migratedDB),
		playlistRepositoryProvider(migratedDB),
	)

	return &DependencyContainer{
		Library: library,
		listSongsHandler: lazy.New(func() (http.ListSongsHandler, error) {
			return http.NewListSongsHandler(library.MustLoad()), nil
		}),
		listPlaylistsHandler: lazy.New(func() (http.ListPlaylistsHandler, error) {
			return http.NewListPlaylistsHandler(library.MustLoad()), nil
		}),
		listImportablePlaylistsHandler: lazy.New(func() (http.ListImportablePlaylistsHandler, error) {
			return http.NewListImportablePlaylistsHandler(library.MustLoad()), nil
		}),
		listPracticeLevelsHandler: lazy.New(func() (http.ListPracticeLevelsHandler, error) {
			return http.NewListPracticeLevelsHandler(), nil
		}),
	}
}

// MustRegisterHTTPHandlers applies opts, usually the session gate, to every library handler.
func (c *DependencyContainer) MustRegisterHTTPHandlers(registry pkghttp.HandlerRegistry, opts ...pkghttp.ServerOption) {
	registry.Register(c.listSongsHandler.MustLoad(), opts...)
	registry.Register(c.listPlaylistsHandler.MustLoad(), opts...)
	registry.Register(c.listImportablePlaylistsHandler.MustLoad(), opts...)
	registry.Register(c.listPracticeLevelsHandler.MustLoad(), opts...)
}

func songRepositoryProvider(db lazy.Loader[pkgsql.Database]) lazy.Loader[domain.SongRepository] {
	return lazy.New(func() (domain.SongRepository, error) {
		database := db.MustLoad()
		return sql.NewSongRepository(database, database.Builder()), nil
	})
}

func playlistRepositoryProvider(db lazy.Loader[pkgsql.Database]) lazy.Loader[domain.PlaylistRepository] {
	return lazy.New(func() (domain.PlaylistRepository, error) {
		database := db.MustLoad()
		return sql.NewPlaylistRepository(database, database.Builder()), nil
	})
}

func libraryProvider(
	songs lazy.Loader[domain.SongRepository],
	playlists lazy.Loader[domain.PlaylistRepository],
) lazy.Loader[service.Library] {
	return lazy.New(func() (service.Library, error) {
		return service.NewLibrary(songs.MustLoad(), playlists.MustLoad()), nil
	})
}
