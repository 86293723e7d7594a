package calls

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Status string

const (
	StatusPlaced Status = "placed"
	StatusFailed Status = "failed"
)

type Outcome struct {
	DispatchID  string        `json:"dispatchId"`
	Provider    string        `json:"provider"`
	PhoneNumber string        `json:"phoneNumber"`
	Status      Status        `json:"status"`
	CallID      string        `json:"callId,omitempty"`
	Error       string        `json:"error,omitempty"`
	Duration    time.Duration `json:"durationNs"`
}

// Handle tracks one dispatched call. The caller may wait on Done but never
// has to.
type Handle struct {
	ID       string
	Provider string

	done    chan struct{}
	once    sync.Once
	outcome Outcome
}

func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Outcome blocks until the dispatch finishes or ctx ends.
func (h *Handle) Outcome(ctx context.Context) (Outcome, error) {
	select {
	case <-h.done:
		return h.outcome, nil
	case <-ctx.Done():
		return Outcome{}, ctx.Err()
	}
}

func (h *Handle) finish(o Outcome) {
	h.once.Do(func() {
		h.outcome = o
		close(h.done)
	})
}

// Publisher receives every finished outcome, e.g. the websocket event hub.
type Publisher interface {
	Publish(o Outcome)
}

type Dispatcher struct {
	provider  Provider
	publisher Publisher
	logger    *zap.Logger
	validate  *validator.Validate
	wg        sync.WaitGroup
}

type Option func(*Dispatcher)

func WithPublisher(p Publisher) Option {
	return func(d *Dispatcher) { d.publisher = p }
}

func WithLogger(l *zap.Logger) Option {
	return func(d *Dispatcher) { d.logger = l }
}

func NewDispatcher(provider Provider, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		provider: provider,
		logger:   zap.L(),
		validate: validator.New(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch validates req and starts the provider call in the background. It
// returns as soon as the call has been handed off; the provider's answer is
// only logged and published.
func (d *Dispatcher) Dispatch(ctx context.Context, req CallRequest) (*Handle, error) {
	req.PhoneNumber = strings.TrimSpace(req.PhoneNumber)
	if err := d.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	h := &Handle{
		ID:       uuid.NewString(),
		Provider: d.provider.Name(),
		done:     make(chan struct{}),
	}

	// the request context is cancelled once the handler responds
	callCtx := context.WithoutCancel(ctx)

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.run(callCtx, h, req)
	}()

	return h, nil
}

func (d *Dispatcher) run(ctx context.Context, h *Handle, req CallRequest) {
	start := time.Now()
	outcome := Outcome{
		DispatchID:  h.ID,
		Provider:    d.provider.Name(),
		PhoneNumber: req.PhoneNumber,
	}

	callID, err := d.provider.PlaceCall(ctx, req)
	outcome.Duration = time.Since(start)

	if err != nil {
		outcome.Status = StatusFailed
		outcome.Error = err.Error()
		d.logger.Error("Call dispatch failed",
			zap.String("dispatch_id", h.ID),
			zap.String("provider", outcome.Provider),
			zap.Duration("duration", outcome.Duration),
			zap.Error(err),
		)
	} else {
		outcome.Status = StatusPlaced
		outcome.CallID = callID
		d.logger.Info("Call placed",
			zap.String("dispatch_id", h.ID),
			zap.String("provider", outcome.Provider),
			zap.String("call_id", callID),
			zap.Duration("duration", outcome.Duration),
		)
	}

	h.finish(outcome)
	if d.publisher != nil {
		d.publisher.Publish(outcome)
	}
}

// Wait blocks until all in-flight dispatches finish or ctx ends. Used on
// shutdown so accepted calls are not cut off.
func (d *Dispatcher) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
