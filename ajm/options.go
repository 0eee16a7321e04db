// SPDX-License-Identifier: EPL-2.0

package ajm

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ik5/ajmp3/audio"
)

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l == nil {
			l = zap.NewNop()
		}
		s.logger = l
	}
}

// WithBlockWriter sets a tap receiving every block delivered to the caller.
func WithBlockWriter(w audio.BlockWriter) Option {
	return func(s *Session) {
		s.tap = w
	}
}

// WithID overrides the random session id used in log fields.
func WithID(id uuid.UUID) Option {
	return func(s *Session) {
		s.id = id
	}
}
