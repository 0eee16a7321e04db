// SPDX-License-Identifier: EPL-2.0

package ajmp3

import "errors"

var (
	// ErrOutputTooSmall is returned when the output chunk cannot hold a single decoded block
	ErrOutputTooSmall = errors.New("ajmp3: output chunk smaller than a decoded block")
	// ErrNoFrames is returned by Probe when no frame header is found
	ErrNoFrames = errors.New("ajmp3: no mp3 frames found")
)
