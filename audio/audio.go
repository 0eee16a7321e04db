// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"encoding/binary"

	goaudio "github.com/go-audio/audio"
)

// SampleFormat describes how samples are stored inside a Block.
type SampleFormat int

const (
	FormatUnknown SampleFormat = iota
	FormatU8
	FormatS16
	FormatS32
	FormatF32
	FormatF64
	FormatU8Planar
	FormatS16Planar
	FormatS32Planar
	FormatF32Planar
	FormatF64Planar
)

var formatNames = map[SampleFormat]string{
	FormatU8:        "u8",
	FormatS16:       "s16",
	FormatS32:       "s32",
	FormatF32:       "f32",
	FormatF64:       "f64",
	FormatU8Planar:  "u8p",
	FormatS16Planar: "s16p",
	FormatS32Planar: "s32p",
	FormatF32Planar: "f32p",
	FormatF64Planar: "f64p",
}

func (f SampleFormat) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "unknown"
}

// Planar reports whether every channel lives in its own plane.
func (f SampleFormat) Planar() bool {
	return f >= FormatU8Planar && f <= FormatF64Planar
}

// BytesPerSample returns the storage size of one sample, or 0 for unknown formats.
func (f SampleFormat) BytesPerSample() int {
	switch f {
	case FormatU8, FormatU8Planar:
		return 1
	case FormatS16, FormatS16Planar:
		return 2
	case FormatS32, FormatS32Planar, FormatF32, FormatF32Planar:
		return 4
	case FormatF64, FormatF64Planar:
		return 8
	}
	return 0
}

// Block is one decoded audio frame as handed out by an Engine.
//
// Interleaved formats use a single plane in Data[0]. Planar formats carry
// one plane per channel. Sample data is little-endian.
type Block struct {
	Format     SampleFormat
	Layout     goaudio.Format // channel count and sample rate
	NumSamples int            // samples per channel
	Data       [][]byte
}

// Channels returns the channel count of the block.
func (b *Block) Channels() int { return b.Layout.NumChannels }

// SampleRate returns the block sample rate in Hz.
func (b *Block) SampleRate() int { return b.Layout.SampleRate }

// Canonical reports whether the block is already interleaved 16-bit PCM.
func (b *Block) Canonical() bool { return b.Format == FormatS16 }

// ByteSize is the number of canonical PCM bytes the block occupies on output.
func (b *Block) ByteSize() int {
	return b.Channels() * b.NumSamples * 2
}

// PCM returns the canonical payload. It is only meaningful when Canonical is true.
func (b *Block) PCM() []byte {
	if len(b.Data) == 0 {
		return nil
	}
	size := b.ByteSize()
	if len(b.Data[0]) < size {
		return b.Data[0]
	}
	return b.Data[0][:size]
}

// IntBuffer exposes a canonical block as a go-audio buffer, e.g. for encoders.
func (b *Block) IntBuffer() *goaudio.IntBuffer {
	pcm := b.PCM()
	data := make([]int, len(pcm)/2)
	for i := range data {
		data[i] = int(int16(binary.LittleEndian.Uint16(pcm[2*i:])))
	}
	layout := b.Layout
	return &goaudio.IntBuffer{
		Format:         &layout,
		Data:           data,
		SourceBitDepth: 16,
	}
}

// Engine is the decode capability: it accepts whole compressed units and
// hands back decoded blocks.
type Engine interface {
	// Submit queues one compressed unit for decoding.
	Submit(unit []byte) error
	// Receive returns the next decoded block. ErrNoneReady and ErrEndOfStream
	// mean nothing is available right now; any other error is unrecoverable.
	Receive() (*Block, error)
	// Close releases the engine context.
	Close() error
}

// EngineFactory allocates and opens a fresh engine context.
type EngineFactory func() (Engine, error)

// Splitter locates compressed unit boundaries in a raw byte stream.
type Splitter interface {
	// Feed offers buf to the splitter. It returns how many bytes were consumed
	// and, once one is complete, the next compressed unit.
	Feed(buf []byte) (consumed int, unit []byte, err error)
}

// BlockWriter receives canonical blocks as they are delivered to the caller.
type BlockWriter interface {
	WriteBlock(b *Block) error
}
