package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
)

type Handler interface {
	Method() string
	Path() string
	Handle(w ResponseWriter, r *http.Request) error
}

type ResponseWriter interface {
	SetHeader(key, value string) ResponseWriter
	SetStatusCode(httpCode int) ResponseWriter
	SetCookie(cookie *http.Cookie) ResponseWriter
	SetJSONBody(data any) ResponseWriter
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteJSON is for middlewares that answer before a Handler runs.
func WriteJSON(w http.ResponseWriter, httpCode int, body any) {
	encoded, err := json.Marshal(body)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpCode)
	_, _ = w.Write(encoded)
}

type responseWriter struct {
	impl http.ResponseWriter

	body     any
	hasBody  bool
	httpCode int
}

func (w *responseWriter) SetHeader(key, value string) ResponseWriter {
	w.impl.Header().Set(key, value)
	return w
}

func (w *responseWriter) SetStatusCode(httpCode int) ResponseWriter {
	w.httpCode = httpCode
	return w
}

func (w *responseWriter) SetCookie(cookie *http.Cookie) ResponseWriter {
	http.SetCookie(w.impl, cookie)
	return w
}

func (w *responseWriter) SetJSONBody(data any) ResponseWriter {
	w.body = data
	w.hasBody = true
	return w
}

func (w *responseWriter) Write(ctx context.Context, err error) {
	meta := getHandlerMetadata(ctx)
	if err != nil {
		meta.Error = err
		httpCode := errorStatusCode(meta, err, w.httpCode)
		WriteJSON(w.impl, httpCode, ErrorResponse{Error: http.StatusText(httpCode)})
		return
	}

	if !w.hasBody {
		w.impl.WriteHeader(w.httpCode)
		return
	}

	encoded, err := json.Marshal(w.body)
	if err != nil {
		meta.Error = fmt.Errorf("encode body: %w", err)
		w.impl.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.impl.Header().Set("Content-Type", "application/json")
	w.impl.WriteHeader(w.httpCode)
	_, err = w.impl.Write(encoded)
	if err != nil {
		meta.Error = fmt.Errorf("write body: %w", err)
	}
}

func (w *responseWriter) WritePanic(ctx context.Context, p Panic) {
	meta := getHandlerMetadata(ctx)
	meta.Panic = &p

	w.impl.WriteHeader(http.StatusInternalServerError)
}

func errorStatusCode(meta *handlerMetadata, err error, explicitCode int) int {
	if errors.Is(err, ErrParsingError) {
		return http.StatusBadRequest
	}

	for _, mapping := range meta.errorMappings {
		if mapping.predicate(err) {
			return mapping.httpCode
		}
	}

	if explicitCode >= http.StatusBadRequest {
		return explicitCode
	}

	return http.StatusInternalServerError
}

func httpHandlerWrapper(handler Handler) http.HandlerFunc {
	recoverPanic := func(r *http.Request, respWriter *responseWriter) {
		msg := recover()
		if msg == nil {
			return
		}

		respWriter.WritePanic(r.Context(), Panic{
			Message:    fmt.Sprintf("%v", msg),
			Stacktrace: debug.Stack(),
		})
	}

	return func(w http.ResponseWriter, r *http.Request) {
		respWriter := &responseWriter{
			impl:     w,
			httpCode: http.StatusOK,
		}

		defer recoverPanic(r, respWriter)
		err := handler.Handle(respWriter, r)
		respWriter.Write(r.Context(), err)
	}
}
