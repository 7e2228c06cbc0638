package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
)

type HandlerFunc func(w ResponseWriter, r *http.Request) (err error)

type Handler interface {
	Method() string
	Path() string
	Handle(w ResponseWriter, r *http.Request) (err error)
}

type ResponseWriter interface {
	SetHeader(key, value string) ResponseWriter
	SetStatusCode(httpCode int) ResponseWriter
	SetCookie(cookie *http.Cookie) ResponseWriter
	SetJSONBody(data any) ResponseWriter
}

type responseWriter struct {
	impl http.ResponseWriter

	writeBodyFunc func() error
	httpCode      int
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
	w.writeBodyFunc = func() error {
		bodyEncoded, err := json.Marshal(data)
		if err != nil {
			return fmt.Errorf("encode body: %w", err)
		}

		w.impl.Header().Set("Content-Type", "application/json")
		w.impl.WriteHeader(w.httpCode)
		_, err = w.impl.Write(bodyEncoded)
		if err != nil {
			return fmt.Errorf("write body: %w", err)
		}

		return nil
	}
	return w
}

func (w *responseWriter) Write(ctx context.Context, err error) {
	httpCode := w.httpCode
	switch {
	case errors.Is(err, ErrParsingError):
		httpCode = http.StatusBadRequest
		w.impl.WriteHeader(httpCode)
	case err != nil:
		httpCode = http.StatusInternalServerError
		w.impl.WriteHeader(httpCode)
	case w.writeBodyFunc != nil:
		// the body func writes the header itself, the Content-Type
		// must be set before the status code goes out
		err = w.writeBodyFunc()
	default:
		w.impl.WriteHeader(httpCode)
	}

	meta := getHandlerMetadata(ctx)
	meta.Code = httpCode
	meta.Error = err
}

func (w *responseWriter) WritePanic(ctx context.Context, p Panic) {
	meta := getHandlerMetadata(ctx)
	meta.Code = http.StatusInternalServerError
	meta.Panic = &p

	w.impl.WriteHeader(http.StatusInternalServerError)
}

func httpHandlerWrapper(handler HandlerFunc) http.HandlerFunc {
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
			impl:          w,
			writeBodyFunc: nil,
			httpCode:      http.StatusOK,
		}

		defer recoverPanic(r, respWriter)
		err := handler(respWriter, r)
		respWriter.Write(r.Context(), err)
	}
}
