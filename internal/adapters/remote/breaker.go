package remote

import (
	"context"
	"errors"
	"time"

	"github.com/shloksachdev/PaperLens/internal/domain"
	"github.com/shloksachdev/PaperLens/internal/ports"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

const halfOpenMaxRequests = 1

type BreakerSettings struct {
	MinRequests  uint32
	FailureRatio float64
	OpenTimeout  time.Duration
	Logger       *zap.Logger
}

// Breaker fails fast while the document service keeps failing. Each operation
// trips independently. Calls are never retried; a rejected call surfaces as a
// transport error like any other failure.
type Breaker struct {
	next ports.RemoteService

	submit  *gobreaker.CircuitBreaker[domain.DocumentHandle]
	analyze *gobreaker.CircuitBreaker[domain.AnalysisResult]
	ask     *gobreaker.CircuitBreaker[string]
}

var _ ports.RemoteService = (*Breaker)(nil)

func NewBreaker(next ports.RemoteService, settings BreakerSettings) *Breaker {
	if settings.Logger == nil {
		settings.Logger = zap.NewNop()
	}

	return &Breaker{
		next:    next,
		submit:  newCircuitBreaker[domain.DocumentHandle](opSubmit, settings),
		analyze: newCircuitBreaker[domain.AnalysisResult](opAnalyze, settings),
		ask:     newCircuitBreaker[string](opAsk, settings),
	}
}

func (b *Breaker) SubmitDocument(ctx context.Context, doc domain.Document) (domain.DocumentHandle, error) {
	handle, err := b.submit.Execute(func() (domain.DocumentHandle, error) {
		return b.next.SubmitDocument(ctx, doc)
	})
	return handle, domain.TransportError(opSubmit, err)
}

func (b *Breaker) RequestAnalysis(ctx context.Context, handle domain.DocumentHandle) (domain.AnalysisResult, error) {
	result, err := b.analyze.Execute(func() (domain.AnalysisResult, error) {
		return b.next.RequestAnalysis(ctx, handle)
	})
	return result, domain.TransportError(opAnalyze, err)
}

func (b *Breaker) AskQuestion(ctx context.Context, handle domain.DocumentHandle, question string) (string, error) {
	answer, err := b.ask.Execute(func() (string, error) {
		return b.next.AskQuestion(ctx, handle, question)
	})
	return answer, domain.TransportError(opAsk, err)
}

// IsCircuitOpen reports whether err was produced by a tripped breaker rather
// than by the service itself.
func IsCircuitOpen(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

func newCircuitBreaker[T any](operation string, settings BreakerSettings) *gobreaker.CircuitBreaker[T] {
	logger := settings.Logger
	return gobreaker.NewCircuitBreaker[T](gobreaker.Settings{
		Name:        operation,
		MaxRequests: halfOpenMaxRequests,
		Timeout:     settings.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < settings.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= settings.FailureRatio
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				zap.String("operation", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})
}
