package domain

import "errors"

var (
	// ErrNotFound signals an empty selection: the requested entity has no
	// reviews. Callers surface it, they never render a zeroed-out report.
	ErrNotFound = errors.New("entity not found")

	// ErrEmptyDataset is returned when aggregate metrics are asked for a
	// dataset with zero reviews. Callers must guard before invoking.
	ErrEmptyDataset = errors.New("empty dataset")

	// ErrNoDataset means no review table could be loaded at all.
	ErrNoDataset = errors.New("no dataset found")

	// ErrNoReviewColumn means column detection found no review-text column.
	// This is a fatal configuration error with no fallback.
	ErrNoReviewColumn = errors.New("review column not detected")
)
