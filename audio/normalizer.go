// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"encoding/binary"
	"fmt"
	"math"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/ajmp3/utils"
)

// sampleReader decodes sample i of a plane into int16.
type sampleReader func(plane []byte, i int) int16

// convLayout identifies the input a conversion context was built for.
type convLayout struct {
	format SampleFormat
	pcm    goaudio.Format
}

// convContext converts one input layout into canonical interleaved S16.
type convContext struct {
	layout convLayout
	read   sampleReader
	stride int // bytes per sample in a plane
	planar bool
}

func newConvContext(l convLayout) (*convContext, error) {
	if l.pcm.NumChannels <= 0 {
		return nil, fmt.Errorf("%w: %d channels", ErrUnsupportedFormat, l.pcm.NumChannels)
	}

	var read sampleReader
	switch l.format {
	case FormatU8, FormatU8Planar:
		read = func(p []byte, i int) int16 { return utils.Uint8ToInt16(p[i]) }
	case FormatS16, FormatS16Planar:
		read = func(p []byte, i int) int16 { return int16(binary.LittleEndian.Uint16(p[2*i:])) }
	case FormatS32, FormatS32Planar:
		read = func(p []byte, i int) int16 { return utils.Int32ToInt16(int32(binary.LittleEndian.Uint32(p[4*i:]))) }
	case FormatF32, FormatF32Planar:
		read = func(p []byte, i int) int16 {
			return utils.Float32ToInt16(math.Float32frombits(binary.LittleEndian.Uint32(p[4*i:])))
		}
	case FormatF64, FormatF64Planar:
		read = func(p []byte, i int) int16 {
			return utils.Float64ToInt16(math.Float64frombits(binary.LittleEndian.Uint64(p[8*i:])))
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, l.format)
	}

	return &convContext{
		layout: l,
		read:   read,
		stride: l.format.BytesPerSample(),
		planar: l.format.Planar(),
	}, nil
}

func (c *convContext) release() {
	c.read = nil
}

func (c *convContext) convert(b *Block) (*Block, error) {
	channels := c.layout.pcm.NumChannels
	n := b.NumSamples

	if c.planar {
		if len(b.Data) < channels {
			return nil, fmt.Errorf("%w: %d planes for %d channels", ErrShortBlock, len(b.Data), channels)
		}
		for ch := range channels {
			if len(b.Data[ch]) < n*c.stride {
				return nil, fmt.Errorf("%w: plane %d", ErrShortBlock, ch)
			}
		}
	} else if len(b.Data) == 0 || len(b.Data[0]) < n*channels*c.stride {
		return nil, ErrShortBlock
	}

	out := make([]byte, n*channels*2)
	for i := range n {
		for ch := range channels {
			var v int16
			if c.planar {
				v = c.read(b.Data[ch], i)
			} else {
				v = c.read(b.Data[0], i*channels+ch)
			}
			binary.LittleEndian.PutUint16(out[(i*channels+ch)*2:], uint16(v))
		}
	}

	return &Block{
		Format:     FormatS16,
		Layout:     b.Layout,
		NumSamples: n,
		Data:       [][]byte{out},
	}, nil
}

// Normalizer converts decoded blocks into canonical interleaved 16-bit PCM.
// It owns a single conversion context which is rebuilt whenever the input
// layout changes. A Normalizer is not safe for concurrent use.
type Normalizer struct {
	ctx     *convContext
	rebuilt int
}

func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize returns b unchanged when it is already canonical, otherwise a
// converted copy with the same channel count and sample rate.
func (n *Normalizer) Normalize(b *Block) (*Block, error) {
	if b.Canonical() {
		return b, nil
	}

	l := convLayout{format: b.Format, pcm: b.Layout}
	if n.ctx == nil || n.ctx.layout != l {
		n.Release()

		ctx, err := newConvContext(l)
		if err != nil {
			return nil, err
		}
		n.ctx = ctx
		n.rebuilt++
	}

	return n.ctx.convert(b)
}

// Rebuilds reports how many conversion contexts have been created so far.
func (n *Normalizer) Rebuilds() int { return n.rebuilt }

// Release drops the current conversion context. Safe to call repeatedly.
func (n *Normalizer) Release() {
	if n.ctx == nil {
		return
	}
	n.ctx.release()
	n.ctx = nil
}
