package preset

import "errors"

var (
	ErrUnknownPreset     = errors.New("preset: unknown preset")
	ErrUnsupportedFormat = errors.New("preset: unsupported file format")
	ErrUnknownAttribute  = errors.New("preset: unknown attribute")
)
