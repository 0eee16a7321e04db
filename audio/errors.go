// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	// ErrNoneReady means the engine needs more input before it can output a block.
	ErrNoneReady = errors.New("no decoded output ready")
	// ErrEndOfStream means the engine has flushed everything for the current unit.
	ErrEndOfStream = errors.New("end of stream")
	// ErrDecode is an unrecoverable engine failure.
	ErrDecode = errors.New("decode failed")
	// ErrUnsupportedFormat is returned when no conversion to canonical PCM exists.
	ErrUnsupportedFormat = errors.New("unsupported sample format")
	// ErrShortBlock is returned when a block carries less data than it declares.
	ErrShortBlock = errors.New("block data shorter than declared")
	// ErrUnknownEngine is returned by the registry for unregistered backends.
	ErrUnknownEngine = errors.New("unknown engine")
)

// Transient reports whether err only means "nothing more to drain right now".
func Transient(err error) bool {
	return errors.Is(err, ErrNoneReady) || errors.Is(err, ErrEndOfStream)
}
