package statsdump

import (
	"errors"
	"fmt"

	"github.com/ssargent/statsdump/pkg/codec"
)

var (
	// ErrTruncatedDump indicates a dump shorter than its 4-byte header
	ErrTruncatedDump = errors.New("stats dump shorter than header")

	// ErrUnexpectedEndOfData indicates a field that runs past the end of the dump
	ErrUnexpectedEndOfData = codec.ErrUnexpectedEndOfData

	// ErrPlayerIndexOutOfRange indicates a per-player tag whose player digit is not 1-8,
	// or a QUIT tag with no preceding side tag to take the player from
	ErrPlayerIndexOutOfRange = errors.New("player index out of range")

	// ErrUnknownTag is returned in strict mode for tags with no handler
	ErrUnknownTag = errors.New("unknown tag")
)

// DecodeError describes why a dump could not be decoded. Kind is one of the
// sentinel errors above; errors.Is matches both Kind and the underlying cause.
type DecodeError struct {
	Kind   error
	Tag    string
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Tag == "" {
		return fmt.Sprintf("decode stats dump at offset %d: %v", e.Offset, e.Err)
	}
	return fmt.Sprintf("decode stats dump: tag %q at offset %d: %v", e.Tag, e.Offset, e.Err)
}

// Unwrap returns both the kind and the cause.
func (e *DecodeError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// newDecodeError classifies err into one of the sentinel kinds.
func newDecodeError(tag string, offset int, err error) *DecodeError {
	kind := ErrUnexpectedEndOfData
	switch {
	case errors.Is(err, ErrTruncatedDump):
		kind = ErrTruncatedDump
	case errors.Is(err, ErrPlayerIndexOutOfRange):
		kind = ErrPlayerIndexOutOfRange
	case errors.Is(err, ErrUnknownTag):
		kind = ErrUnknownTag
	}
	return &DecodeError{Kind: kind, Tag: tag, Offset: offset, Err: err}
}
