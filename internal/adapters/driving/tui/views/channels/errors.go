package channels

import "errors"

// ErrNoFilterService indicates that no filter service was provided.
var ErrNoFilterService = errors.New("filter service is required")
