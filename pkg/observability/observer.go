//go:generate mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Observer=Observer"
package observability

import (
	"context"

	"github.com/stafftools/staff-service/pkg/log"
)

const FieldRequestID Field = "requestID"

type (
	Field string

	Observer interface {
		Field(ctx context.Context, field Field) (string, bool)
		WithField(ctx context.Context, field Field, value string) context.Context
	}

	ObserverOption func(*observer)

	contextKey struct{ field Field }
)

type observer struct {
	logger        log.Logger
	loggingFields map[Field]struct{}
}

func New(opts ...ObserverOption) Observer {
	o := observer{}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func (o observer) Field(ctx context.Context, field Field) (string, bool) {
	value, ok := ctx.Value(contextKey{field}).(string)
	if !ok || value == "" {
		return "", false
	}

	return value, true
}

func (o observer) WithField(ctx context.Context, field Field, value string) context.Context {
	ctx = context.WithValue(ctx, contextKey{field}, value)

	if _, ok := o.loggingFields[field]; ok {
		ctx = o.logger.WithContext(ctx, log.Fields{
			string(field): value,
		})
	}

	return ctx
}

func WithFieldsLogging(logger log.Logger, fields ...Field) ObserverOption {
	return func(o *observer) {
		o.logger = logger

		o.loggingFields = make(map[Field]struct{}, len(fields))
		for _, field := range fields {
			o.loggingFields[field] = struct{}{}
		}
	}
}
