package http

import (
	"net/http"

	"github.com/klwxsrx/repertoire-hero/internal/library/app/service"
	pkghttp "github.com/klwxsrx/repertoire-hero/pkg/http"
)

type ListPlaylistsHandler struct {
	library service.Library
}

func NewListPlaylistsHandler(library service.Library) ListPlaylistsHandler {
	return ListPlaylistsHandler{library: library}
}

func (h ListPlaylistsHandler) Method() string {
	return http.MethodGet
}

func (h ListPlaylistsHandler) Path() string {
	return "/api/playlists"
}

func (h ListPlaylistsHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	playlists, err := h.library.ListPlaylists(r.Context())
	if err != nil {
		return err
	}

	w.SetJSONBody(PlaylistsOut{Playlists: toPlaylistsOut(playlists)})
	return nil
}
