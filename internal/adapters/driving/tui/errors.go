package tui

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("tui: search service is required")

// ErrMissingFilterService is returned when the filter service is not provided.
var ErrMissingFilterService = errors.New("tui: filter service is required")
