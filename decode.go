// SPDX-License-Identifier: EPL-2.0

package ajmp3

import (
	"github.com/ik5/ajmp3/ajm"
	"github.com/ik5/ajmp3/audio"
	"github.com/ik5/ajmp3/formats/mp3"
)

const (
	// DefaultInChunk is the input window used when none is given.
	DefaultInChunk = 4096
	// DefaultOutChunk holds a few decoded MPEG-1 frames.
	DefaultOutChunk = 4 * 1152 * 2 * 2
)

// Pipeline decodes a complete buffer through one ajm.Session, offering the
// input and output in windows of InChunk and OutChunk bytes.
//
// Zero values select the go-mp3 engine, a fresh mp3.Splitter and the
// default window sizes.
type Pipeline struct {
	Engine   audio.EngineFactory
	Splitter audio.Splitter
	InChunk  int
	OutChunk int
	Options  []ajm.Option
	// Sink, if set, is credited with every decoded frame.
	Sink ajm.FrameSink
}

// Decode runs data through a new session and returns the collected PCM.
// A leading ID3v2 tag is skipped. Decoding stops early, without error, when
// the splitter cannot make progress on the remaining bytes.
func (p Pipeline) Decode(data []byte) ([]byte, ajm.Stats, error) {
	factory := p.Engine
	if factory == nil {
		factory = mp3.NewEngine
	}
	splitter := p.Splitter
	if splitter == nil {
		splitter = mp3.NewSplitter()
	}
	inChunk := p.InChunk
	if inChunk <= 0 {
		inChunk = DefaultInChunk
	}
	outChunk := p.OutChunk
	if outChunk <= 0 {
		outChunk = DefaultOutChunk
	}

	s, err := ajm.NewSession(factory, splitter, p.Options...)
	if err != nil {
		return nil, ajm.Stats{}, err
	}
	defer s.Close()

	data = mp3.SkipID3v2(data)
	out := make([]byte, outChunk)
	pcm := make([]byte, 0, len(data)*4)

	for len(data) > 0 {
		in := data[:min(len(data), inChunk)]

		remIn, remOut, err := s.DecodeChunk(in, out, p.Sink)
		pcm = append(pcm, out[:len(out)-remOut]...)
		if err != nil {
			return pcm, s.Stats(), err
		}

		used := len(in) - remIn
		data = data[used:]

		if used == 0 && remOut == len(out) {
			if s.Stats().PendingBytes > 0 {
				return pcm, s.Stats(), ErrOutputTooSmall
			}
			// only unsplittable bytes are left
			break
		}
	}

	for {
		remOut, err := s.Flush(out, p.Sink)
		pcm = append(pcm, out[:len(out)-remOut]...)
		if err != nil {
			return pcm, s.Stats(), err
		}

		if remOut == len(out) {
			if s.Stats().PendingBytes > 0 {
				return pcm, s.Stats(), ErrOutputTooSmall
			}
			break
		}
	}

	return pcm, s.Stats(), nil
}

// DecodeAll decodes data with the default MP3 engine and splitter.
//
// Example:
//
//	pcm, stats, err := ajmp3.DecodeAll(data, 4096, 16384)
//	if err != nil {
//	    return err
//	}
//	// pcm is interleaved 16-bit little-endian PCM
func DecodeAll(data []byte, inChunk, outChunk int, opts ...ajm.Option) ([]byte, ajm.Stats, error) {
	p := Pipeline{
		InChunk:  inChunk,
		OutChunk: outChunk,
		Options:  opts,
	}
	return p.Decode(data)
}
