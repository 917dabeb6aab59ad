// Package protocol implements the binary wire format: length-prefixed
// framing plus the closed client->server and server->client message
// vocabularies.
package protocol

import (
	"encoding/binary"
	"fmt"
	"io"
)

// MaxBodySize bounds the frame body length accepted by ReadFrame. No
// message in either vocabulary exceeds 15 bytes; anything near the limit
// is a corrupt or hostile stream, rejected before allocating.
const MaxBodySize = 1024

// RawFrame is the only unit that moves over the wire:
// [1 byte marker][4 bytes body length, little-endian][body].
type RawFrame struct {
	Marker byte
	Body   []byte
}

// ReadFrame reads exactly one frame, blocking until 5 + length bytes
// arrive. A stream that closes short is a networking failure.
func ReadFrame(r io.Reader) (RawFrame, error) {
	var header [5]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return RawFrame{}, fmt.Errorf("read frame header: %w", err)
	}

	marker := header[0]
	length := binary.LittleEndian.Uint32(header[1:])
	if length > MaxBodySize {
		return RawFrame{}, &FrameError{Marker: marker, Length: length}
	}

	body := make([]byte, length)
	if _, err := io.ReadFull(r, body); err != nil {
		return RawFrame{}, fmt.Errorf("read frame body: %w", err)
	}
	return RawFrame{Marker: marker, Body: body}, nil
}

// WriteFrame writes one frame and flushes it if w supports flushing.
func WriteFrame(w io.Writer, f RawFrame) error {
	var header [5]byte
	header[0] = f.Marker
	binary.LittleEndian.PutUint32(header[1:], uint32(len(f.Body)))

	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("write frame header: %w", err)
	}
	if len(f.Body) > 0 {
		if _, err := w.Write(f.Body); err != nil {
			return fmt.Errorf("write frame body: %w", err)
		}
	}
	if fl, ok := w.(interface{ Flush() error }); ok {
		if err := fl.Flush(); err != nil {
			return fmt.Errorf("flush frame: %w", err)
		}
	}
	return nil
}
