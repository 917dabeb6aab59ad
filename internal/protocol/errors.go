package protocol

import (
	"errors"
	"fmt"
)

// ErrHandshakeFailed is returned when a peer does not complete the
// handshake exchange.
var ErrHandshakeFailed = errors.New("unsuccessful handshake")

// FrameError reports a frame whose marker or body did not match any
// expected shape. It keeps the raw bytes for diagnostics.
type FrameError struct {
	Marker byte
	Length uint32
	Body   []byte
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("invalid message; typemarker: %d, sizemarker: %d, body: %v",
		e.Marker, e.Length, e.Body)
}

func frameError(f RawFrame) error {
	return &FrameError{Marker: f.Marker, Length: uint32(len(f.Body)), Body: f.Body}
}
