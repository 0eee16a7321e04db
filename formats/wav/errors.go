// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotCanonical  = errors.New("block is not 16-bit interleaved PCM")
	ErrLayoutChanged = errors.New("block layout differs from the WAV header")
	ErrWriterClosed  = errors.New("WAV writer closed")
)
