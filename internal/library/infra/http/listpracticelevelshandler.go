package http

import (
	"net/http"

	"github.com/klwxsrx/repertoire-hero/internal/library/domain"
	pkghttp "github.com/klwxsrx/repertoire-hero/pkg/http"
)

type ListPracticeLevelsHandler struct{}

func NewListPracticeLevelsHandler() ListPracticeLevelsHandler {
	return ListPracticeLevelsHandler{}
}

func (h ListPracticeLevelsHandler) Method() string {
	return http.MethodGet
}

func (h ListPracticeLevelsHandler) Path() string {
	return "/api/practice-levels"
}

func (h ListPracticeLevelsHandler) Handle(w pkghttp.ResponseWriter, _ *http.Request) error {
	w.SetJSONBody(toPracticeLevelsOut(domain.PracticeLevels()))
	return nil
}
