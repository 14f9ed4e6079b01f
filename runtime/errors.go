package runtime

import (
	"io"

	"github.com/go-faster/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

var (
	// ErrTruncated is returned when the input ends inside a tag or value.
	ErrTruncated = errors.New("truncated input")
	// ErrWireType is returned when a field arrives with a wire type its codec
	// cannot decode.
	ErrWireType = errors.New("unexpected wire type")
	// ErrReadOnlyAccessor is returned by the mutating methods of a reflection
	// accessor built from a static getter.
	ErrReadOnlyAccessor = errors.New("field accessor is read-only")
)

func parseError(num protowire.Number, n int) error {
	err := protowire.ParseError(n)
	if errors.Is(err, io.ErrUnexpectedEOF) {
		err = ErrTruncated
	}
	return errors.Wrapf(err, "field %d", num)
}

func wireTypeError(num protowire.Number, typ protowire.Type) error {
	return errors.Wrapf(ErrWireType, "field %d: wire type %d", num, typ)
}

func fieldError(num protowire.Number, err error) error {
	return errors.Wrapf(err, "field %d", num)
}

// ParseError converts the negative length returned by a protowire consume
// function into an error naming the field being decoded.
func ParseError(num protowire.Number, n int) error { return parseError(num, n) }

// FieldError annotates an error raised while decoding field num.
func FieldError(num protowire.Number, err error) error { return fieldError(num, err) }
