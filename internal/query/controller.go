// Package query drives a date query through validation, one provider round
// trip, and exactly one resolution of the shared state.
package query

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/five82/apod98/internal/apod"
	"github.com/five82/apod98/internal/dates"
	"github.com/five82/apod98/internal/logging"
	"github.com/five82/apod98/internal/state"
)

// Request is one submitted query.
type Request struct {
	Raw        string
	Date       dates.Date
	Generation uint64
	ID         string
}

// Controller owns the transitions of a state.Store. It is safe for
// concurrent use; overlapping submissions resolve last-call-wins.
type Controller struct {
	fetcher apod.Fetcher
	store   *state.Store
	logger  *slog.Logger
	msgs    Messages
	ctx     context.Context

	wg sync.WaitGroup
}

// Option customizes a Controller.
type Option func(*Controller)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMessages sets the user-facing wording.
func WithMessages(m Messages) Option {
	return func(c *Controller) { c.msgs = m }
}

// WithContext sets the base context for background fetches started by
// Submit. Cancelling it abandons them.
func WithContext(ctx context.Context) Option {
	return func(c *Controller) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// New builds a Controller publishing into store.
func New(fetcher apod.Fetcher, store *state.Store, opts ...Option) *Controller {
	c := &Controller{
		fetcher: fetcher,
		store:   store,
		logger:  logging.Discard(),
		msgs:    MessagesFor(DefaultLanguage),
		ctx:     context.Background(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Submit starts a query and returns without waiting for the network. The
// outcome is observed through the store. Invalid input is rejected
// synchronously and never reaches the provider.
func (c *Controller) Submit(raw string) {
	req, ok := c.begin(raw)
	if !ok {
		return
	}
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.resolve(c.ctx, req)
	}()
}

// SubmitWait runs a query to completion on the calling goroutine and returns
// the resulting snapshot. When a newer query overtakes this one, the returned
// snapshot reflects the newer query.
func (c *Controller) SubmitWait(ctx context.Context, raw string) state.Snapshot {
	if req, ok := c.begin(raw); ok {
		c.resolve(ctx, req)
	}
	return c.store.Snapshot()
}

// Reset asks for today's record.
func (c *Controller) Reset() {
	c.Submit("")
}

// Wait blocks until every fetch started by Submit has resolved or been
// discarded.
func (c *Controller) Wait() {
	c.wg.Wait()
}

func (c *Controller) begin(raw string) (Request, bool) {
	date, err := dates.Validate(raw)
	if err != nil {
		gen := c.store.Reject(raw, state.Failure{
			Kind:    state.ErrorValidation,
			Title:   c.msgs.BadFormatTitle,
			Message: c.msgs.BadFormat,
		})
		c.logger.Info("query rejected", "input", raw, "generation", gen, "error", err)
		return Request{}, false
	}

	gen, id := c.store.Begin(raw)
	c.logger.Info("query submitted", "date", displayDate(date), "generation", gen, "request_id", id)
	return Request{Raw: raw, Date: date, Generation: gen, ID: id}, true
}

func (c *Controller) resolve(ctx context.Context, req Request) {
	logger := c.logger.With("request_id", req.ID, "generation", req.Generation)

	rec, err := c.fetcher.Fetch(apod.WithRequestID(ctx, req.ID), req.Date.String())
	if err == nil {
		if c.store.Succeed(req.Generation, rec) {
			logger.Info("query resolved", "date", rec.Date, "media_type", rec.MediaType.String())
		} else {
			logger.Debug("discarded stale result", "date", rec.Date)
		}
		return
	}

	failure := c.classify(err)
	if c.store.Fail(req.Generation, failure) {
		logger.Warn("query failed", "kind", failure.Kind.String(), "error", err)
	} else {
		logger.Debug("discarded stale failure", "kind", failure.Kind.String(), "error", err)
	}
}

func (c *Controller) classify(err error) state.Failure {
	var perr *apod.ProviderError
	if !errors.As(err, &perr) {
		return state.Failure{Kind: state.ErrorNetwork, Title: c.msgs.NetworkTitle, Message: c.msgs.Network}
	}

	kind := state.ErrorNotFound
	if perr.Kind == apod.KindMalformed {
		kind = state.ErrorMalformed
	}
	msg := perr.Msg
	if msg == "" {
		msg = c.msgs.NotFound
	}
	return state.Failure{Kind: kind, Title: c.msgs.NotFoundTitle, Message: msg}
}

func displayDate(d dates.Date) string {
	if d.IsToday() {
		return "today"
	}
	return d.String()
}
