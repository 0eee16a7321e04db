// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidHeader indicates header bits that index outside the lookup tables
	ErrInvalidHeader = errors.New("invalid mp3 frame header")
	// ErrShortHeader indicates fewer than 4 header bytes
	ErrShortHeader = fmt.Errorf("%w: need 4 bytes", ErrInvalidHeader)
	// ErrEngineClosed is returned when a closed engine is used
	ErrEngineClosed = errors.New("mp3 engine closed")
)
