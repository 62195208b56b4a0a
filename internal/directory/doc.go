// Package directory implements the state machine behind the roster gallery.
//
// # Overview
//
// A directory is one fetched batch of personnel records shown as a searchable
// list, plus an optional detail view that pages through the visible records
// with wraparound. The package keeps the list, the filtered view and the open
// detail position consistent with each other; drawing is delegated to a Sink.
//
// # Components
//
//   - record.go: Record and RecordSet, plus display helpers
//   - store.go: Store holding the full batch and the current view
//   - filter.go: Filter, a pure case-folded substring match on "first last"
//   - cursor.go: Cursor, the closed/open(position) detail state
//   - controller.go: Controller, which applies input events and drives the Sink
//   - sink.go: the Sink and Fetcher collaborator interfaces
//
// # Data Flow
//
//	Fetcher ──> Controller.OnDataLoaded ──> Store.SetFull ──> Sink.RenderList
//	query   ──> Controller.OnQueryChanged ──> Filter(query, full) ──> Store.SetView
//	                                      └─> Cursor.Rebind ──> Sink.RenderList / RenderDetail
//	select  ──> Controller.OnCardSelected ──> Cursor.Select ──> Sink.RenderDetail
//	prev/next ─> Cursor.Prev/Next ──> Sink.RenderDetail
//
// # Filtering
//
// Every query is applied to the full batch, never to the previous view. An
// empty query restores the full batch. Whitespace is matched literally.
//
// # Cursor Re-binding
//
// When the view is replaced while the detail view is open, the cursor keeps
// its numeric position and now shows whichever record occupies it. If the
// position no longer exists the detail view closes.
//
// # Concurrency
//
// None. The controller is not safe for concurrent use; the TUI calls it only
// from the Bubble Tea update loop.
package directory
