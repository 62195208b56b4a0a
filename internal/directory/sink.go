package directory

import "context"

// Sink is the rendering surface the controller drives. Implementations only
// display what they are given; they never call back into the controller.
type Sink interface {
	RenderList(view RecordSet)
	RenderDetail(rec Record)
	ClearDetail()
	RenderLoadError()
	RenderLoading()
}

// Fetcher retrieves the one batch of records. Failures are reported as
// *NetworkError.
type Fetcher interface {
	FetchRecords(ctx context.Context) (RecordSet, error)
}
