// SPDX-License-Identifier: EPL-2.0

package ajm

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ik5/ajmp3/audio"
)

// State is the lifecycle state of a Session.
type State int

const (
	StateUninitialized State = iota
	StateReady
	StateDecoding
	StateFailed
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateReady:
		return "ready"
	case StateDecoding:
		return "decoding"
	case StateFailed:
		return "failed"
	case StateClosed:
		return "closed"
	}
	return "unknown"
}

// step is a transition of the decode loop.
type step int

const (
	stepParse step = iota
	stepSubmit
	stepDrain
	stepDone
)

// Stats are the running statistics reported back to the guest.
type Stats struct {
	DecodedSamples uint64
	NumFrames      uint64
	PendingBytes   int // canonical bytes held back by a full output window
}

// chunk holds the cursors of one decode call. Both windows only shrink.
type chunk struct {
	in     []byte
	out    []byte
	unit   []byte
	frames uint64
}

// Session drives one decode engine over repeated bounded input and output
// windows. It owns its engine, splitter and conversion context.
//
// A Session is not safe for concurrent use; independent sessions are.
type Session struct {
	id       uuid.UUID
	factory  audio.EngineFactory
	engine   audio.Engine
	splitter audio.Splitter
	norm     *audio.Normalizer
	tap      audio.BlockWriter
	logger   *zap.Logger

	state   State
	failure error

	// pending is a converted block that did not fit the last output window.
	pending *audio.Block
	// draining is set while the engine may still hold decoded blocks.
	draining bool

	decodedSamples uint64
	numFrames      uint64
}

// NewSession allocates an engine from factory and returns a Ready session.
// No session is returned when the engine cannot be created.
func NewSession(factory audio.EngineFactory, splitter audio.Splitter, opts ...Option) (*Session, error) {
	if factory == nil {
		return nil, ErrNoEngine
	}
	if splitter == nil {
		return nil, ErrNoSplitter
	}

	s := &Session{
		id:       uuid.New(),
		factory:  factory,
		splitter: splitter,
		norm:     audio.NewNormalizer(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(zap.String("session", s.id.String()))

	if err := s.Reset(); err != nil {
		return nil, err
	}

	return s, nil
}

// ID returns the session id.
func (s *Session) ID() uuid.UUID { return s.id }

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// DecodedSamples is the number of samples per channel delivered since the last Reset.
func (s *Session) DecodedSamples() uint64 { return s.decodedSamples }

// NumFrames is the number of blocks delivered since the last Reset.
func (s *Session) NumFrames() uint64 { return s.numFrames }

// Stats returns the counters together with the size of any held back block.
func (s *Session) Stats() Stats {
	st := Stats{
		DecodedSamples: s.decodedSamples,
		NumFrames:      s.numFrames,
	}
	if s.pending != nil {
		st.PendingBytes = s.pending.ByteSize()
	}
	return st
}

// Reset releases the engine context, allocates a fresh one and zeroes the
// statistics. Pending output is dropped. The splitter is kept as is.
// Reset is valid in every state except Closed.
func (s *Session) Reset() error {
	if s.state == StateClosed {
		return ErrClosed
	}

	if s.engine != nil {
		if err := s.engine.Close(); err != nil {
			s.logger.Warn("closing decode engine", zap.Error(err))
		}
		s.engine = nil
	}

	s.decodedSamples = 0
	s.numFrames = 0
	s.pending = nil
	s.draining = false

	e, err := s.factory()
	if err == nil && e == nil {
		err = errors.New("factory returned no engine")
	}
	if err != nil {
		return s.fail(fmt.Errorf("%w: %w", ErrEngineInit, err))
	}

	s.engine = e
	s.state = StateReady
	s.failure = nil
	s.logger.Debug("decode session reset")

	return nil
}

// DecodeChunk decodes from in into out and returns how many bytes of each
// window remain unused. Empty windows return at once. When out cannot hold
// the next decoded block the call returns early; that block is delivered
// first on the next call.
//
// sink, if not nil, is credited with the frames produced by this call.
func (s *Session) DecodeChunk(in, out []byte, sink FrameSink) (int, int, error) {
	if err := s.usable(); err != nil {
		return len(in), len(out), err
	}
	if len(in) == 0 || len(out) == 0 {
		return len(in), len(out), nil
	}

	c := &chunk{in: in, out: out}
	start := stepParse
	if s.pending != nil || s.draining {
		start = stepDrain
	}

	err := s.run(c, start)
	if sink != nil && c.frames > 0 {
		sink.AddFrames(c.frames)
	}

	return len(c.in), len(c.out), err
}

// Flush delivers blocks still held by the session or the engine without
// consuming input, e.g. at the end of a job.
func (s *Session) Flush(out []byte, sink FrameSink) (int, error) {
	if err := s.usable(); err != nil {
		return len(out), err
	}
	if len(out) == 0 {
		return 0, nil
	}

	c := &chunk{out: out}
	err := s.run(c, stepDrain)
	if sink != nil && c.frames > 0 {
		sink.AddFrames(c.frames)
	}

	return len(c.out), err
}

// Close releases the engine, the conversion context and, when it can be
// closed, the splitter. Close is idempotent.
func (s *Session) Close() error {
	if s.state == StateClosed {
		return nil
	}

	var errs []error
	if s.engine != nil {
		errs = append(errs, s.engine.Close())
		s.engine = nil
	}
	if c, ok := s.splitter.(io.Closer); ok {
		errs = append(errs, c.Close())
	}
	s.norm.Release()
	s.pending = nil
	s.state = StateClosed

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("close session: %w", err)
	}

	return nil
}

func (s *Session) usable() error {
	switch s.state {
	case StateClosed:
		return ErrClosed
	case StateFailed:
		return fmt.Errorf("%w: %w", ErrSessionFailed, s.failure)
	}
	return nil
}

func (s *Session) fail(err error) error {
	s.state = StateFailed
	s.failure = err
	s.logger.Error("decode session failed", zap.Error(err))
	return err
}

// run walks Parsing -> Submitting -> Draining -> Parsing until a window is
// exhausted, the splitter stalls or the output window is full.
func (s *Session) run(c *chunk, next step) error {
	s.state = StateDecoding

	var err error
	for next != stepDone {
		switch next {
		case stepParse:
			next, err = s.parse(c)
		case stepSubmit:
			next, err = s.submit(c)
		case stepDrain:
			next, err = s.drain(c)
		}
		if err != nil {
			return s.fail(err)
		}
	}

	s.state = StateReady
	return nil
}

func (s *Session) parse(c *chunk) (step, error) {
	if len(c.in) == 0 || len(c.out) == 0 {
		return stepDone, nil
	}

	consumed, unit, err := s.splitter.Feed(c.in)
	if err != nil {
		return stepDone, fmt.Errorf("%w: %w", ErrSplit, err)
	}
	if consumed < 0 || consumed > len(c.in) {
		return stepDone, fmt.Errorf("%w: consumed %d of %d bytes", ErrSplit, consumed, len(c.in))
	}
	c.in = c.in[consumed:]

	if unit != nil {
		c.unit = unit
		return stepSubmit, nil
	}
	if consumed == 0 {
		s.logger.Warn("splitter made no progress", zap.Int("remaining_in", len(c.in)))
		return stepDone, nil
	}

	return stepParse, nil
}

func (s *Session) submit(c *chunk) (step, error) {
	if err := s.engine.Submit(c.unit); err != nil {
		return stepDone, fmt.Errorf("%w: %w", ErrSubmit, err)
	}
	c.unit = nil
	s.draining = true

	return stepDrain, nil
}

func (s *Session) drain(c *chunk) (step, error) {
	for {
		b := s.pending
		s.pending = nil

		if b == nil {
			raw, err := s.engine.Receive()
			if audio.Transient(err) || (err == nil && raw == nil) {
				s.draining = false
				return stepParse, nil
			}
			if err != nil {
				return stepDone, fmt.Errorf("%w: %w", ErrDecode, err)
			}

			b, err = s.norm.Normalize(raw)
			if err != nil {
				return stepDone, fmt.Errorf("%w: %w", ErrNormalize, err)
			}
		}

		size := b.ByteSize()
		if size > len(c.out) {
			s.pending = b
			s.logger.Debug("output window full",
				zap.Int("block_bytes", size),
				zap.Int("remaining_out", len(c.out)))
			return stepDone, nil
		}

		pcm := b.PCM()
		if len(pcm) < size {
			return stepDone, fmt.Errorf("%w: %w", ErrDecode, audio.ErrShortBlock)
		}

		copy(c.out, pcm)
		c.out = c.out[size:]
		s.decodedSamples += uint64(b.NumSamples)
		s.numFrames++
		c.frames++

		if s.tap != nil {
			if err := s.tap.WriteBlock(b); err != nil {
				s.logger.Warn("block writer failed", zap.Error(err))
			}
		}
	}
}
