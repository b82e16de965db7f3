// Package logtail reads the tail of apod98's own log file and splits slog
// text records for display in the activity overlay.
//
// # Reading
//
// Read keeps a ring buffer of the last maxLines lines while scanning, so
// memory stays bounded no matter how large the file has grown. Lines longer
// than 1 MiB abort the read with an error.
//
// # Parsing
//
// The logger writes slog's text format:
//
//	time=2024-05-01T10:00:00.000Z level=INFO msg="query submitted" date=2024-05-01 generation=3
//
// Parse returns the time, level and message separately plus the remaining
// attributes in order. Quoted values are unescaped with strconv.Unquote.
// Anything that is not a key=value record (a panic trace, a truncated write)
// is returned verbatim as Msg.
package logtail
