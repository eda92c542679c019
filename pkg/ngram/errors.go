package ngram

import "errors"

// Error sentinels for the package. Wrapped errors carry detail; use
// errors.Is to classify.
var (
	// ErrCorpusNotFound means the corpus path did not resolve to an
	// existing file. Returned before any counting work has started.
	ErrCorpusNotFound = errors.New("hangram: corpus file not found")

	// ErrModelFormat means a model file did not match the expected schema.
	ErrModelFormat = errors.New("hangram: invalid model format")
)
