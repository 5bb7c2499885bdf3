// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lecture

import "errors"

var (
	// ErrUnserializable is returned when a note item has no RST rendering.
	ErrUnserializable = errors.New("could not serialize item to rst")

	// ErrNoLink is returned when a resource has neither a static nor an
	// external URL.
	ErrNoLink = errors.New("resource has no link")

	// ErrInvalidURL is returned for link targets that are not absolute
	// http(s) URLs.
	ErrInvalidURL = errors.New("invalid http url")

	// ErrNotImplemented is returned when an automatic resource URL is
	// requested for content that is not generated by the build.
	ErrNotImplemented = errors.New("automatic url is only available for generated content")
)
