package http

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
)

type contextKey int

const (
	handlerMetaContextKey contextKey = iota
)

type Panic struct {
	Message    string
	Stacktrace []byte
}

type handlerMetadata struct {
	Code          int
	Panic         *Panic
	Error         error
	errorMappings []errorMapping
}

type metadataResponseWriter struct {
	http.ResponseWriter
	meta        *handlerMetadata
	wroteHeader bool
}

func (w *metadataResponseWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.meta.Code = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *metadataResponseWriter) Write(data []byte) (int, error) {
	w.wroteHeader = true
	return w.ResponseWriter.Write(data)
}

func (w *metadataResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func withHandlerMetadata(router *mux.Router) *mux.Router {
	router.Use(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			meta := &handlerMetadata{Code: http.StatusOK}
			ctx := context.WithValue(r.Context(), handlerMetaContextKey, meta)
			handler.ServeHTTP(&metadataResponseWriter{ResponseWriter: w, meta: meta}, r.WithContext(ctx))
		})
	})
	return router
}

func getHandlerMetadata(ctx context.Context) *handlerMetadata {
	meta, ok := ctx.Value(handlerMetaContextKey).(*handlerMetadata)
	if ok {
		return meta
	}
	return &handlerMetadata{}
}
