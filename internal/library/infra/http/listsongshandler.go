package http

import (
	"net/http"

	"github.com/klwxsrx/repertoire-hero/internal/library/app/service"
	pkghttp "github.com/klwxsrx/repertoire-hero/pkg/http"
)

type ListSongsHandler struct {
	library service.Library
}

func NewListSongsHandler(library service.Library) ListSongsHandler {
	return ListSongsHandler{library: library}
}

func (h ListSongsHandler) Method() string {
	return http.MethodGet
}

func (h ListSongsHandler) Path() string {
	return "/api/songs"
}

func (h ListSongsHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	songs, err := h.library.ListSongs(r.Context())
	if err != nil {
		return err
	}

	w.SetJSONBody(toSongsOut(songs))
	return nil
}
