package http

import (
	"net/http"

	"github.com/stafftools/staff-service/pkg/log"
)

func WithLogging(logger log.Logger, excludedPaths ...string) ServerOption {
	excludedPaths = append(excludedPaths, HealthPath)

	isExcluded := func(path string) bool {
		for _, excludedPath := range excludedPaths {
			if excludedPath == path {
				return true
			}
		}
		return false
	}

	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isExcluded(r.URL.Path) {
				handler.ServeHTTP(w, r)
				return
			}

			handler.ServeHTTP(w, r)
			meta := getHandlerMetadata(r.Context())

			fieldsLogger := logger.With(log.Fields{
				"method":       r.Method,
				"path":         r.URL.Path,
				"uri":          r.RequestURI,
				"responseCode": meta.Code,
			})

			switch {
			case meta.Panic != nil:
				fieldsLogger.With(log.Fields{
					"panic": log.Fields{
						"message": meta.Panic.Message,
						"stack":   string(meta.Panic.Stacktrace),
					},
				}).Error(r.Context(), "request handled with panic")
			case meta.Error != nil:
				fieldsLogger.WithError(meta.Error).Warn(r.Context(), "request handled with error")
			default:
				fieldsLogger.Info(r.Context(), "request handled")
			}
		})
	})
}
