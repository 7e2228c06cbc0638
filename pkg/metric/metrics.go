package metric

import "time"

type (
	Labels map[string]string

	Metrics interface {
		With(labels Labels) Metrics
		Increment(key string)
		Count(key string, value int)
		Gauge(key string, value int)
		Duration(key string, duration time.Duration)
	}
)
