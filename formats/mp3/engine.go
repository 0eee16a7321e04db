// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/ajmp3/audio"
)

// maxFrameBytes is the decoded size of one MPEG-1 Layer III frame:
// 1152 samples, 2 channels, 2 bytes.
const maxFrameBytes = 1152 * 2 * 2

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

func openGoMP3(r io.Reader) (mp3Reader, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, err
	}
	return dec, nil
}

// unitQueue exposes submitted units as one continuous stream. It reports
// io.EOF whenever it runs dry; more units may be pushed afterwards.
type unitQueue struct {
	units [][]byte
	cur   []byte
}

func (q *unitQueue) push(unit []byte) {
	q.units = append(q.units, unit)
}

func (q *unitQueue) empty() bool {
	return len(q.cur) == 0 && len(q.units) == 0
}

func (q *unitQueue) Read(p []byte) (int, error) {
	for len(q.cur) == 0 {
		if len(q.units) == 0 {
			return 0, io.EOF
		}
		q.cur = q.units[0]
		q.units[0] = nil
		q.units = q.units[1:]
	}

	n := copy(p, q.cur)
	q.cur = q.cur[n:]

	return n, nil
}

// Engine decodes whole MP3 frames with github.com/hajimehoshi/go-mp3.
// Output blocks are always interleaved 16-bit stereo; mono streams are
// duplicated onto both channels by go-mp3. Engine implements audio.Engine.
type Engine struct {
	queue  *unitQueue
	open   func(io.Reader) (mp3Reader, error)
	dec    mp3Reader
	buf    []byte
	closed bool
}

// NewEngine allocates an engine context. It matches audio.EngineFactory.
func NewEngine() (audio.Engine, error) {
	return newEngine(openGoMP3), nil
}

func newEngine(open func(io.Reader) (mp3Reader, error)) *Engine {
	return &Engine{
		queue: &unitQueue{},
		open:  open,
		buf:   make([]byte, maxFrameBytes),
	}
}

// Register adds the go-mp3 backend to reg under "mp3".
func Register(reg *audio.Registry) {
	reg.Register("mp3", NewEngine)
}

func (e *Engine) Submit(unit []byte) error {
	if e.closed {
		return ErrEngineClosed
	}
	if len(unit) == 0 {
		return nil
	}

	c := make([]byte, len(unit))
	copy(c, unit)
	e.queue.push(c)

	return nil
}

func (e *Engine) Receive() (*audio.Block, error) {
	if e.closed {
		return nil, ErrEngineClosed
	}

	if e.dec == nil {
		if e.queue.empty() {
			return nil, audio.ErrNoneReady
		}

		dec, err := e.open(e.queue)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", audio.ErrDecode, err)
		}
		e.dec = dec
	}

	n, err := e.dec.Read(e.buf)
	if n == 0 {
		if err == nil || errors.Is(err, io.EOF) {
			return nil, audio.ErrNoneReady
		}
		return nil, fmt.Errorf("%w: %w", audio.ErrDecode, err)
	}

	// go-mp3 hands out one decoded frame per Read when buf fits a frame
	pcm := make([]byte, n-n%4)
	if len(pcm) == 0 {
		return nil, audio.ErrNoneReady
	}
	copy(pcm, e.buf[:len(pcm)])

	b := &audio.Block{
		Format:     audio.FormatS16,
		NumSamples: len(pcm) / 4,
		Data:       [][]byte{pcm},
	}
	b.Layout.NumChannels = 2
	b.Layout.SampleRate = e.dec.SampleRate()

	return b, nil
}

// Close releases the decoder and any queued units. Safe to call repeatedly.
func (e *Engine) Close() error {
	e.closed = true
	e.dec = nil
	e.queue = &unitQueue{}

	return nil
}
