// Package logtail reads and formats roster's own log file.
//
// Read extracts the last N lines of a file with a ring buffer, so memory stays
// O(N) regardless of file size; a non-positive N returns the whole file and a
// missing file yields no lines. FormatLine turns one JSON entry written by the
// zap file logger into a single readable line:
//
//	2026-10-15T09:00:00.000Z INFO  [roster.directory] records loaded total=12
//
// Non-JSON lines (panics, partial writes) pass through unchanged. The
// `roster logs` command is the only consumer.
package logtail
