package ui

import "github.com/five82/roster/internal/directory"

// phase tracks where the one-time load stands.
type phase int

const (
	phaseLoading phase = iota
	phaseLoaded
	phaseFailed
)

// screen is the render sink behind the Bubble Tea view. The controller
// writes into it during Update; View reads it.
type screen struct {
	phase  phase
	list   directory.RecordSet
	detail *directory.Record
}

var _ directory.Sink = (*screen)(nil)

func (s *screen) RenderLoading() {
	s.phase = phaseLoading
}

func (s *screen) RenderLoadError() {
	s.phase = phaseFailed
	s.list = nil
}

func (s *screen) RenderList(view directory.RecordSet) {
	s.phase = phaseLoaded
	s.list = view
}

func (s *screen) RenderDetail(rec directory.Record) {
	s.detail = &rec
}

func (s *screen) ClearDetail() {
	s.detail = nil
}

func (s *screen) detailOpen() bool {
	return s.detail != nil
}
