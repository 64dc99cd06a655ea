package http

import (
	"net/http"

	"github.com/klwxsrx/repertoire-hero/pkg/log"
)

const requestLogEntryField = "http"

func WithLogging(logger log.Logger, infoLevel, errorLevel log.Level) ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handler.ServeHTTP(w, r)
			meta := getHandlerMetadata(r.Context())
			if r.URL.Path == healthCheckPath || r.URL.Path == metricsPath {
				return
			}

			fieldsLogger := getRequestResponseFieldsLogger(r, meta.Code, logger)
			if meta.Error != nil {
				fieldsLogger = fieldsLogger.WithError(meta.Error)
			}

			switch {
			case meta.Panic != nil:
				fieldsLogger.With(log.Fields{
					"panic": log.Fields{
						"message":    meta.Panic.Message,
						"stacktrace": string(meta.Panic.Stacktrace),
					},
				}).Log(r.Context(), errorLevel, "request handled with panic")
			case meta.Code >= http.StatusInternalServerError:
				fieldsLogger.Log(r.Context(), errorLevel, "request handled with internal error")
			default:
				fieldsLogger.Log(r.Context(), infoLevel, "request handled")
			}
		})
	})
}

func getRequestFieldsLogger(r *http.Request, logger log.Logger) log.Logger {
	return logger.With(wrapFieldsWithRequestLogEntry(log.Fields{
		"route":  getRequestRouteName(r),
		"method": r.Method,
		"path":   r.URL.Path,
	}))
}

func getRequestResponseFieldsLogger(r *http.Request, code int, logger log.Logger) log.Logger {
	return getRequestFieldsLogger(r, logger).With(wrapFieldsWithRequestLogEntry(log.Fields{
		"code": code,
	}))
}

func wrapFieldsWithRequestLogEntry(fields log.Fields) log.Fields {
	return log.Fields{requestLogEntryField: fields}
}
