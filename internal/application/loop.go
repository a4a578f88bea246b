package application

import (
	"context"
	"errors"
	"sync"
)

var ErrLoopStopped = errors.New("session loop stopped")

// Loop is the single logical thread that owns session state. Intents run on
// it through Do; remote calls run on their own goroutines and hand their
// completion back to it, so state is never touched concurrently.
type Loop struct {
	tasks    chan func()
	done     chan struct{}
	inflight sync.WaitGroup
}

func NewLoop() *Loop {
	return &Loop{
		tasks: make(chan func()),
		done:  make(chan struct{}),
	}
}

// Run executes posted tasks until ctx is cancelled. It must be called once.
func (l *Loop) Run(ctx context.Context) error {
	defer close(l.done)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case task := <-l.tasks:
			task()
		}
	}
}

// Do runs fn on the loop and returns once it has finished. Calling Do from a
// task already running on the loop deadlocks.
func (l *Loop) Do(fn func()) error {
	finished := make(chan struct{})
	task := func() {
		defer close(finished)
		fn()
	}

	select {
	case l.tasks <- task:
	case <-l.done:
		return ErrLoopStopped
	}

	<-finished
	return nil
}

// Call is Do for functions that report an error.
func (l *Loop) Call(fn func() error) error {
	var err error
	if doErr := l.Do(func() { err = fn() }); doErr != nil {
		return doErr
	}

	return err
}

// Wait blocks until every dispatched call has settled and its completion has
// run on the loop. It must not race with new dispatches.
func (l *Loop) Wait() {
	l.inflight.Wait()
}

func (l *Loop) post(task func()) {
	select {
	case l.tasks <- task:
	case <-l.done:
		l.inflight.Done()
	}
}

// dispatch runs call off the loop and schedules settle on the loop with its
// result. settle runs exactly once unless the loop stops first.
func dispatch[T any](l *Loop, ctx context.Context, call func(context.Context) (T, error), settle func(T, error)) {
	l.inflight.Add(1)

	go func() {
		value, err := call(ctx)
		l.post(func() {
			defer l.inflight.Done()
			settle(value, err)
		})
	}()
}
