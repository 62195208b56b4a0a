package app

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/five82/roster/internal/directory"
)

const (
	loadingMessage   = "Loading users..."
	loadErrorMessage = "Failed to load users."
	emptyMessage     = "No employees match."
)

// textSink keeps the latest frame the controller rendered so a one-shot
// command can print it once at the end.
type textSink struct {
	loading bool
	failed  bool
	list    directory.RecordSet
	total   int
	detail  *directory.Record
}

var _ directory.Sink = (*textSink)(nil)

func newTextSink() *textSink {
	return &textSink{}
}

func (s *textSink) RenderLoading() {
	s.loading = true
}

func (s *textSink) RenderLoadError() {
	s.loading = false
	s.failed = true
}

func (s *textSink) RenderList(view directory.RecordSet) {
	s.loading = false
	if s.list == nil {
		s.total = len(view)
	}
	s.list = view
}

func (s *textSink) RenderDetail(rec directory.Record) {
	s.detail = &rec
}

func (s *textSink) ClearDetail() {
	s.detail = nil
}

// WriteTo prints the current frame.
func (s *textSink) WriteTo(w io.Writer) error {
	switch {
	case s.failed:
		_, err := fmt.Fprintln(w, loadErrorMessage)
		return err
	case s.loading:
		_, err := fmt.Fprintln(w, loadingMessage)
		return err
	}

	if len(s.list) == 0 {
		if _, err := fmt.Fprintln(w, emptyMessage); err != nil {
			return err
		}
	} else {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for i, rec := range s.list {
			fmt.Fprintf(tw, "%d.\t%s\t%s\t%s\n", i+1, rec.FullName(), rec.Email, rec.Locality())
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	if s.total > 0 && len(s.list) != s.total {
		if _, err := fmt.Fprintf(w, "%d of %d employees\n", len(s.list), s.total); err != nil {
			return err
		}
	}

	if s.detail != nil {
		if _, err := io.WriteString(w, "\n"+detailText(*s.detail)); err != nil {
			return err
		}
	}
	return nil
}

func detailText(rec directory.Record) string {
	var b strings.Builder
	b.WriteString(rec.FullName())
	b.WriteString("\n")
	row := func(label, value string) {
		if strings.TrimSpace(value) == "" {
			return
		}
		fmt.Fprintf(&b, "  %-9s %s\n", label+":", value)
	}
	row("Email", rec.Email)
	row("City", rec.City)
	row("Phone", rec.Phone)
	row("Mobile", rec.Mobile)
	row("Address", rec.AddressLine())
	row("Birthday", rec.Birthday())
	row("Picture", rec.PictureURL)
	return b.String()
}
