package directory

import (
	"strings"

	"golang.org/x/text/cases"
)

// Filter returns the records of full whose "first last" name contains query,
// compared case-folded. Whitespace in query is significant. An empty query
// yields a copy of full. The result is always a fresh slice in full's order.
func Filter(query string, full RecordSet) RecordSet {
	if query == "" {
		return cloneRecords(full)
	}
	out := make(RecordSet, 0, len(full))
	for _, rec := range full {
		if Matches(query, rec) {
			out = append(out, rec)
		}
	}
	return out
}

// Matches reports whether rec passes Filter for query.
func Matches(query string, rec Record) bool {
	if query == "" {
		return true
	}
	folder := cases.Fold()
	return strings.Contains(folder.String(rec.FullName()), folder.String(query))
}
