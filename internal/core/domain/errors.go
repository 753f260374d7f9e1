package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidPath is returned when a string is not an absolute prim path.
	ErrInvalidPath = zerr.New("invalid prim path")

	// ErrInvalidLocator is returned when a locator contains empty elements.
	ErrInvalidLocator = zerr.New("invalid data source locator")

	// ErrInvalidBindingPolicy is returned for an unknown material binding policy.
	ErrInvalidBindingPolicy = zerr.New("invalid material binding policy, expected 'nearest' or 'strongerThanDescendants'")

	// ErrInvalidMatrix is returned when a matrix does not have 16 components.
	ErrInvalidMatrix = zerr.New("matrix must have 16 components")

	// ErrInvalidVector is returned when a vector has the wrong number of components.
	ErrInvalidVector = zerr.New("vector must have 3 components")

	// ErrUnsupportedValue is returned when a scene file value has no data source mapping.
	ErrUnsupportedValue = zerr.New("unsupported field value")

	// ErrDuplicatePrim is returned when a scene file declares the same prim path twice.
	ErrDuplicatePrim = zerr.New("duplicate prim path")

	// ErrUnknownEdit is returned when a scene edit has an unknown operation.
	ErrUnknownEdit = zerr.New("unknown edit operation, expected 'add', 'remove' or 'dirty'")

	// ErrUnknownDomain is returned when a flattening domain name is not recognised.
	ErrUnknownDomain = zerr.New("unknown flattening domain")

	// ErrConfigReadFailed is returned when the scene file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read scene file")

	// ErrConfigParseFailed is returned when the scene file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse scene file")

	// ErrTraversalFailed is returned when a parallel scene traversal fails.
	ErrTraversalFailed = zerr.New("scene traversal failed")

	// ErrPrimNotFound is returned when a requested prim does not exist.
	ErrPrimNotFound = zerr.New("prim not found")

	// ErrReplayDiverged is returned when an incrementally updated scene differs from
	// a fresh flatten of the same input.
	ErrReplayDiverged = zerr.New("incremental flatten diverged from a fresh flatten")

	// ErrReplayFailed is returned when applying scene edits fails.
	ErrReplayFailed = zerr.New("failed to replay scene edits")
)
