package directory

import (
	"context"

	"go.uber.org/zap"
)

// Controller owns a Store and a Cursor and is the only component that talks
// to the Sink. All On* methods run to completion on the caller's goroutine;
// callers must serialize them.
type Controller struct {
	sink   Sink
	log    *zap.Logger
	store  Store
	cursor Cursor
	query  string
}

// Option customizes a Controller.
type Option func(*Controller)

// WithLogger attaches a logger. A nil logger is ignored.
func WithLogger(log *zap.Logger) Option {
	return func(c *Controller) {
		if log != nil {
			c.log = log
		}
	}
}

// NewController builds a controller rendering into sink.
func NewController(sink Sink, opts ...Option) *Controller {
	c := &Controller{
		sink: sink,
		log:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ShowLoading renders the loading indicator. It is called once, before the
// fetch resolves.
func (c *Controller) ShowLoading() {
	c.sink.RenderLoading()
}

// Load performs the one-time fetch synchronously and dispatches the outcome.
// The fetch error, if any, is returned after the load error has been rendered.
func (c *Controller) Load(ctx context.Context, fetcher Fetcher) error {
	c.ShowLoading()
	records, err := fetcher.FetchRecords(ctx)
	if err != nil {
		c.OnLoadFailed(err)
		return err
	}
	c.OnDataLoaded(records)
	return nil
}

// OnDataLoaded seeds the store, closes any open detail and renders the list.
func (c *Controller) OnDataLoaded(records RecordSet) {
	c.store.SetFull(records)
	c.query = ""
	if c.cursor.IsOpen() {
		c.cursor.Close()
		c.sink.ClearDetail()
	}
	c.log.Info("records loaded", zap.Int("count", c.store.Total()))
	c.sink.RenderList(c.store.View())
}

// OnLoadFailed renders the load failure. The store is left empty and the fetch
// is not retried.
func (c *Controller) OnLoadFailed(err error) {
	c.log.Warn("failed to load records", zap.Error(err))
	c.sink.RenderLoadError()
}

// OnQueryChanged recomputes the view from the full batch, re-binds an open
// cursor by position and re-renders.
func (c *Controller) OnQueryChanged(query string) {
	c.query = query
	c.store.SetView(Filter(query, c.store.Full()))

	wasOpen := c.cursor.IsOpen()
	c.cursor.Rebind(c.store.Len())

	c.log.Debug("query changed",
		zap.String("query", query),
		zap.Int("matches", c.store.Len()))
	c.sink.RenderList(c.store.View())
	c.renderCursor(wasOpen)
}

// OnCardSelected opens the detail view at position. Positions outside the
// current view are ignored.
func (c *Controller) OnCardSelected(position int) {
	if !c.cursor.Select(position, c.store.Len()) {
		c.log.Debug("ignored selection", zap.Int("position", position), zap.Int("view", c.store.Len()))
		return
	}
	c.renderCursor(true)
}

// OnPrev steps the open detail view backwards with wraparound.
func (c *Controller) OnPrev() {
	if !c.cursor.IsOpen() {
		return
	}
	c.cursor.Prev(c.store.Len())
	c.renderCursor(true)
}

// OnNext steps the open detail view forwards with wraparound.
func (c *Controller) OnNext() {
	if !c.cursor.IsOpen() {
		return
	}
	c.cursor.Next(c.store.Len())
	c.renderCursor(true)
}

// OnDetailClosed closes the detail view.
func (c *Controller) OnDetailClosed() {
	c.cursor.Close()
	c.sink.ClearDetail()
}

// renderCursor renders the record under an open cursor, or clears the detail
// view when a previously open cursor has closed.
func (c *Controller) renderCursor(wasOpen bool) {
	pos, open := c.cursor.Position()
	if open {
		if rec, ok := c.store.At(pos); ok {
			c.sink.RenderDetail(rec)
			return
		}
		c.cursor.Close()
	}
	if wasOpen {
		c.sink.ClearDetail()
	}
}

// Query returns the active query.
func (c *Controller) Query() string {
	return c.query
}

// View returns a copy of the current view.
func (c *Controller) View() RecordSet {
	return c.store.View()
}

// Total reports the size of the full batch.
func (c *Controller) Total() int {
	return c.store.Total()
}

// Cursor returns the open position and whether the detail view is open.
func (c *Controller) Cursor() (int, bool) {
	return c.cursor.Position()
}

// Current returns the record under the cursor.
func (c *Controller) Current() (Record, bool) {
	pos, open := c.cursor.Position()
	if !open {
		return Record{}, false
	}
	return c.store.At(pos)
}
