package mf2lint

import "errors"

// ErrUnknownLocale indicates that a locale tag is malformed or has no plural data.
var ErrUnknownLocale = errors.New("mf2lint: unknown locale")

// ErrNoCategories indicates that a resolver produced an empty category set.
var ErrNoCategories = errors.New("mf2lint: no plural categories")

// ErrMalformedMessage marks message trees that violate the data model, such
// as a variant without a pattern.
var ErrMalformedMessage = errors.New("mf2lint: malformed message")

// ErrNoLoaderPaths is returned by loaders configured without input files.
var ErrNoLoaderPaths = errors.New("mf2lint: no loader paths configured")

// ErrUnsupportedFormat is returned for files with an unknown extension.
var ErrUnsupportedFormat = errors.New("mf2lint: unsupported file format")
