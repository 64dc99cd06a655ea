package http

import (
	"net/http"

	"github.com/klwxsrx/repertoire-hero/internal/library/app/service"
	pkghttp "github.com/klwxsrx/repertoire-hero/pkg/http"
)

type ListImportablePlaylistsHandler struct {
	library service.Library
}

func NewListImportablePlaylistsHandler(library service.Library) ListImportablePlaylistsHandler {
	return ListImportablePlaylistsHandler{library: library}
}

func (h ListImportablePlaylistsHandler) Method() string {
	return http.MethodGet
}

func (h ListImportablePlaylistsHandler) Path() string {
	return "/api/importable-playlists"
}

func (h ListImportablePlaylistsHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	playlists, err := h.library.ListImportablePlaylists(r.Context())
	if err != nil {
		return err
	}

	w.SetJSONBody(toImportablePlaylistsOut(playlists))
	return nil
}
