// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logfields holds the structured log keys shared across commands.
package logfields

import "log/slog"

// Canonical log field names.
const (
	KeyGroup    = "group"
	KeyStub     = "stub"
	KeyLecture  = "lecture"
	KeyFormat   = "format"
	KeyPath     = "path"
	KeyDir      = "dir"
	KeyCount    = "count"
	KeyWeek     = "week"
	KeyDuration = "duration_ms"
	KeyError    = "error"
)

func Group(title string) slog.Attr    { return slog.String(KeyGroup, title) }
func Stub(s string) slog.Attr         { return slog.String(KeyStub, s) }
func Lecture(title string) slog.Attr  { return slog.String(KeyLecture, title) }
func Format(f string) slog.Attr       { return slog.String(KeyFormat, f) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Dir(d string) slog.Attr          { return slog.String(KeyDir, d) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func Week(w int) slog.Attr            { return slog.Int(KeyWeek, w) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDuration, ms) }

// Error returns an error attribute; a nil error logs as an empty string.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
