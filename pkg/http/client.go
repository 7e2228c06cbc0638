package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/stafftools/staff-service/pkg/log"
	"github.com/stafftools/staff-service/pkg/metric"
	"github.com/stafftools/staff-service/pkg/observability"
)

type (
	Destination string

	ClientOption func(*clientImpl)

	Client interface {
		NewRequest(ctx context.Context) *resty.Request
		With(opts ...ClientOption) Client
	}

	clientImpl struct {
		destinationName string
		restClient      *resty.Client
		opts            []ClientOption
	}
)

func NewClient(opts ...ClientOption) Client {
	client := clientImpl{
		destinationName: "",
		restClient:      resty.New(),
		opts:            opts,
	}

	for _, opt := range opts {
		opt(&client)
	}

	return client
}

func (c clientImpl) NewRequest(ctx context.Context) *resty.Request {
	return c.restClient.NewRequest().SetContext(ctx)
}

func (c clientImpl) With(opts ...ClientOption) Client {
	mergedOpts := make([]ClientOption, 0, len(c.opts)+len(opts))
	mergedOpts = append(mergedOpts, c.opts...)
	mergedOpts = append(mergedOpts, opts...)
	return NewClient(mergedOpts...)
}

func WithClientDestination(name, url string) ClientOption {
	return func(c *clientImpl) {
		c.destinationName = name
		c.restClient.SetBaseURL(url)
	}
}

func WithRequestObservability(observer observability.Observer, requestIDHeaderName string) ClientOption {
	return func(c *clientImpl) {
		c.restClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			id, ok := observer.Field(req.Context(), observability.FieldRequestID)
			if !ok {
				return nil
			}

			req.SetHeader(requestIDHeaderName, id)
			return nil
		})
	}
}

func WithRequestLogging(logger log.Logger, infoLevel, errorLevel log.Level) ClientOption {
	return func(c *clientImpl) {
		c.restClient.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			fieldsLogger := logger.With(log.Fields{
				"destinationName": destinationNameForLogging(c),
				"method":          resp.Request.Method,
				"url":             resp.Request.URL,
				"responseCode":    resp.StatusCode(),
			})

			if resp.StatusCode() >= http.StatusInternalServerError {
				fieldsLogger.Log(resp.Request.Context(), errorLevel, "http call completed with internal error")
			} else {
				fieldsLogger.Log(resp.Request.Context(), infoLevel, "http call completed")
			}

			return nil
		})

		c.restClient.OnError(func(req *resty.Request, err error) {
			logger.With(log.Fields{
				"destinationName": destinationNameForLogging(c),
				"method":          req.Method,
				"url":             req.URL,
			}).
				WithError(err).
				Log(req.Context(), errorLevel, "http call completed with error")
		})
	}
}

func WithRequestMetrics(metrics metric.Metrics) ClientOption {
	return func(c *clientImpl) {
		destinationName := c.destinationName
		if destinationName == "" {
			destinationName = "none"
		}

		c.restClient.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			metrics.With(metric.Labels{
				"destination": destinationName,
				"method":      resp.Request.Method,
				"code":        fmt.Sprintf("%d", resp.StatusCode()),
			}).Duration("http_client_request_duration_seconds", resp.Time())
			return nil
		})
	}
}

type ClientFactory struct {
	baseOpts []ClientOption
}

func NewClientFactory(opts ...ClientOption) ClientFactory {
	return ClientFactory{
		baseOpts: opts,
	}
}

func (f ClientFactory) InitClient(dest Destination, baseURL string, extraOpts ...ClientOption) Client {
	opts := make([]ClientOption, 0, len(f.baseOpts)+len(extraOpts)+1)
	opts = append(opts, f.baseOpts...)
	opts = append(opts, WithClientDestination(string(dest), baseURL))
	opts = append(opts, extraOpts...)

	return NewClient(opts...)
}

func destinationNameForLogging(c *clientImpl) string {
	if c.destinationName != "" {
		return c.destinationName
	}
	return "-"
}
