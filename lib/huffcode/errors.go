package huffcode

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
)

// ErrShortBuffer is returned by Encode/Decode when the output cursor ran
// out of room before the stream was complete; for Encode this can happen
// after input is drained, while the final padded byte is still unwritten. It is not a
// failure: the caller is expected to grow or swap the output buffer and
// call again, and the codec will resume exactly where it left off.
var ErrShortBuffer = errors.New("huffcode: short buffer")

// ErrUnknownSymbol is returned by Decoder.Decode in Strict mode when the
// trailing bits after the last full symbol are not a valid padding
// pattern. In non-strict mode this condition is treated as Ok.
var ErrUnknownSymbol = errors.New("huffcode: unknown symbol in strict decode")

func newError(format string, args ...any) error {
	return pkgerrors.Errorf("huffcode: "+format, args...)
}
