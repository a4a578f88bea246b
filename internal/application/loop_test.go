package application

import (
	"context"
	"errors"
	"testing"

	"github.com/shloksachdev/PaperLens/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoopRunsTasksInOrder(t *testing.T) {
	loop := NewLoop()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = loop.Run(ctx) }()

	var order []int
	for i := 0; i < 5; i++ {
		i := i
		require.NoError(t, loop.Do(func() { order = append(order, i) }))
	}

	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestLoopCallReturnsTaskError(t *testing.T) {
	loop := NewLoop()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = loop.Run(ctx) }()

	want := errors.New("rejected")
	assert.ErrorIs(t, loop.Call(func() error { return want }), want)
}

func TestLoopDispatchSettlesOnLoop(t *testing.T) {
	loop := NewLoop()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = loop.Run(ctx) }()

	var settled []string
	require.NoError(t, loop.Do(func() {
		for _, value := range []string{"a", "b"} {
			value := value
			dispatch(loop, context.Background(),
				func(context.Context) (string, error) { return value, nil },
				func(got string, err error) {
					if err == nil {
						settled = append(settled, got)
					}
				},
			)
		}
	}))
	loop.Wait()

	var got []string
	require.NoError(t, loop.Do(func() { got = append(got, settled...) }))
	assert.ElementsMatch(t, []string{"a", "b"}, got)
}

func TestLoopDoAfterStopFails(t *testing.T) {
	loop := NewLoop()
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan error, 1)
	go func() { stopped <- loop.Run(ctx) }()

	cancel()
	assert.ErrorIs(t, <-stopped, context.Canceled)
	assert.ErrorIs(t, loop.Do(func() {}), ErrLoopStopped)
}

func TestNewControllerRequiresRemoteService(t *testing.T) {
	_, err := NewController(NewLoop(), nil, Options{})
	assert.ErrorIs(t, err, errNilRemoteService)

	ctrl, err := NewController(NewLoop(), mocks.NewMockRemoteService(t), Options{})
	require.NoError(t, err)
	assert.NotEmpty(t, ctrl.SessionID())
}

func TestNewControllerRequiresLoop(t *testing.T) {
	ctrl, err := NewController(nil, mocks.NewMockRemoteService(t), Options{})

	assert.ErrorIs(t, err, errNilLoop)
	assert.Nil(t, ctrl)
}
