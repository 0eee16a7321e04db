// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"encoding/binary"
	"errors"
	"math"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/ajmp3/audio"
)

// ErrInjected is the failure the fakes return when told to fail.
var ErrInjected = errors.New("injected failure")

// Splitter is a fake audio.Splitter cutting the stream into fixed size units.
type Splitter struct {
	UnitSize int
	// Stall makes Feed consume nothing.
	Stall bool
	// Err is returned from Feed when set.
	Err error

	partial []byte
	Feeds   int
	Closed  int
}

func NewSplitter(unitSize int) *Splitter {
	return &Splitter{UnitSize: unitSize}
}

func (s *Splitter) Feed(buf []byte) (int, []byte, error) {
	s.Feeds++
	if s.Err != nil {
		return 0, nil, s.Err
	}
	if s.Stall || len(buf) == 0 {
		return 0, nil, nil
	}

	n := min(s.UnitSize-len(s.partial), len(buf))
	s.partial = append(s.partial, buf[:n]...)
	if len(s.partial) < s.UnitSize {
		return n, nil, nil
	}

	unit := s.partial
	s.partial = nil

	return n, unit, nil
}

func (s *Splitter) Close() error {
	s.Closed++
	return nil
}

// Engine is a fake audio.Engine. Every submitted unit yields BlocksPerUnit
// blocks of Samples samples per channel in Format. Sample values encode the
// block sequence number so callers can check ordering.
type Engine struct {
	Format        audio.SampleFormat
	Channels      int
	SampleRate    int
	Samples       int
	BlocksPerUnit int

	// SubmitErr and ReceiveErr are returned once set.
	SubmitErr  error
	ReceiveErr error

	queue     []*audio.Block
	seq       int
	Submitted int
	Closed    int
}

func (e *Engine) Submit(unit []byte) error {
	if e.SubmitErr != nil {
		return e.SubmitErr
	}
	e.Submitted++

	for range e.BlocksPerUnit {
		e.seq++
		e.queue = append(e.queue, e.block(e.seq))
	}

	return nil
}

func (e *Engine) Receive() (*audio.Block, error) {
	if e.ReceiveErr != nil {
		return nil, e.ReceiveErr
	}
	if len(e.queue) == 0 {
		return nil, audio.ErrNoneReady
	}

	b := e.queue[0]
	e.queue = e.queue[1:]

	return b, nil
}

func (e *Engine) Close() error {
	e.Closed++
	return nil
}

// Pending reports how many decoded blocks are waiting in the engine.
func (e *Engine) Pending() int { return len(e.queue) }

func (e *Engine) block(seq int) *audio.Block {
	n := e.Samples * e.Channels
	b := &audio.Block{
		Format:     e.Format,
		Layout:     goaudio.Format{NumChannels: e.Channels, SampleRate: e.SampleRate},
		NumSamples: e.Samples,
	}

	switch e.Format {
	case audio.FormatF32:
		pcm := make([]byte, 4*n)
		v := float32(seq) / 32768.0
		for i := range n {
			binary.LittleEndian.PutUint32(pcm[4*i:], math.Float32bits(v))
		}
		b.Data = [][]byte{pcm}
	case audio.FormatF32Planar:
		for range e.Channels {
			plane := make([]byte, 4*e.Samples)
			v := float32(seq) / 32768.0
			for i := range e.Samples {
				binary.LittleEndian.PutUint32(plane[4*i:], math.Float32bits(v))
			}
			b.Data = append(b.Data, plane)
		}
	default:
		pcm := make([]byte, 2*n)
		for i := range n {
			binary.LittleEndian.PutUint16(pcm[2*i:], uint16(seq))
		}
		b.Data = [][]byte{pcm}
	}

	return b
}

// Factory hands out fake engines and remembers all of them.
type Factory struct {
	// Template is copied for every new engine.
	Template Engine
	// Err makes Open fail.
	Err error

	Engines []*Engine
}

// NewFactory returns a factory producing S16 stereo engines with one
// block of samples per unit.
func NewFactory(samples int) *Factory {
	return &Factory{
		Template: Engine{
			Format:        audio.FormatS16,
			Channels:      2,
			SampleRate:    48000,
			Samples:       samples,
			BlocksPerUnit: 1,
		},
	}
}

// Open matches audio.EngineFactory.
func (f *Factory) Open() (audio.Engine, error) {
	if f.Err != nil {
		return nil, f.Err
	}

	e := &Engine{
		Format:        f.Template.Format,
		Channels:      f.Template.Channels,
		SampleRate:    f.Template.SampleRate,
		Samples:       f.Template.Samples,
		BlocksPerUnit: f.Template.BlocksPerUnit,
	}
	f.Engines = append(f.Engines, e)

	return e, nil
}

// Last returns the most recently opened engine.
func (f *Factory) Last() *Engine {
	if len(f.Engines) == 0 {
		return nil
	}
	return f.Engines[len(f.Engines)-1]
}

// Live counts engines that were opened and not closed.
func (f *Factory) Live() int {
	live := 0
	for _, e := range f.Engines {
		if e.Closed == 0 {
			live++
		}
	}
	return live
}
