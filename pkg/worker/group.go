package worker

import (
	"context"
	"sync"
)

type ErrorJob func(context.Context) error

type Group interface {
	Do(ErrorJob)
	Wait() error
}

type group struct {
	ctx       context.Context
	ctxCancel context.CancelFunc

	errChan   chan error
	errResult error
	pool      Pool
	wg        *sync.WaitGroup

	onceCloser *sync.Once
}

// NewFailFastGroup cancels the group context after the first job error,
// the rest of the jobs are expected to react to the cancellation.
func NewFailFastGroup(ctx context.Context) Group {
	return WithinFailFastGroup(ctx, NewPool(MaxWorkersCountUnlimited))
}

func WithinFailFastGroup(ctx context.Context, pool Pool) Group {
	var ctxCancel context.CancelFunc
	ctx, ctxCancel = context.WithCancel(ctx)
	return &group{
		ctx:        ctx,
		ctxCancel:  ctxCancel,
		errChan:    make(chan error, 1),
		pool:       pool,
		wg:         &sync.WaitGroup{},
		onceCloser: &sync.Once{},
	}
}

func (g *group) Do(job ErrorJob) {
	handleErr := func(err error) {
		if err == nil {
			return
		}

		select {
		case g.errChan <- err:
			g.ctxCancel()
		default:
		}
	}

	g.wg.Add(1)
	g.pool.Do(func() {
		handleErr(job(g.ctx))
		g.wg.Done()
	})
}

func (g *group) Wait() error {
	g.wg.Wait()
	g.onceCloser.Do(func() {
		g.ctxCancel()

		select {
		case g.errResult = <-g.errChan:
		default:
		}
	})

	return g.errResult
}
