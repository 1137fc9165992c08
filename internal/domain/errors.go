package domain

import "errors"

var (
	ErrNotFound             = errors.New("resource not found")
	ErrNoFile               = errors.New("no file provided")
	ErrUnsupportedFileType  = errors.New("unsupported file type")
	ErrFileTooLarge         = errors.New("file exceeds maximum allowed size")
	ErrMalformedModelOutput = errors.New("model output could not be parsed as JSON")
	ErrModelTimeout         = errors.New("vision model call timed out")
	ErrStoreUnavailable     = errors.New("invoice store unavailable")
	// ErrPartialPersist means the header row committed but the item batch did
	// not: the store holds an orphaned header that needs manual remediation.
	// Re-submitting blindly would duplicate the header.
	ErrPartialPersist = errors.New("invoice header saved but line items failed")
	ErrInvalidField   = errors.New("invalid record field path")
)
