package mdexport

import "errors"

var (
	ErrValidation         = errors.New("mdexport: validation failed")
	ErrDuplicateEntry     = errors.New("mdexport: duplicate archive entry")
	ErrEntryTooLarge      = errors.New("mdexport: archive entry exceeds header field capacity")
	ErrLimitExceeded      = errors.New("mdexport: limit exceeded")
	ErrUnknownCompression = errors.New("mdexport: unknown compression")
)
