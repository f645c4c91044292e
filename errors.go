package seqeval

import "errors"

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrAlignment indicates gold and predicted datasets disagree on
	// sentence count or per-sentence token count.
	ErrAlignment = errors.New("seqeval: gold and predicted datasets misaligned")

	// ErrUnknownClass indicates a predicted class index that has no tag
	// in the supplied tag index.
	ErrUnknownClass = errors.New("seqeval: class index not in tag index")
)
