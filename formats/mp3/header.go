// SPDX-License-Identifier: EPL-2.0

package mp3

import "fmt"

// HeaderSize is the number of bytes ParseFrameHeader reads.
const HeaderSize = 4

// Lookup tables as used by the accelerator firmware. They fold the MPEG
// version field onto rows with an XOR and do not follow the public MPEG
// numbering, so keep them exactly as they are.
var (
	sampleRateTable = [3][3]uint32{
		{0x5622, 0x5DC0, 0x3E80},
		{0xAC44, 0xBB80, 0x7D00},
		{0x2B11, 0x2EE0, 0x1F40},
	}

	bitrateTable = [2][15]uint32{
		{0, 0x20, 0x28, 0x30, 0x38, 0x40, 0x50, 0x60, 0x70, 0x80, 0xA0, 0xC0, 0xE0, 0x100, 0x140},
		{0, 0x8, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38, 0x40, 0x50, 0x60, 0x70, 0x80, 0x90, 0xA0},
	}

	unitTable = [2]uint32{0x48, 0x90}
)

// FrameHeader is the frame metadata the accelerator reports for one header.
type FrameHeader struct {
	SampleRate        uint32
	Bitrate           uint32 // bits per second
	NumChannels       uint8
	FrameSize         uint32 // bytes, header included
	SamplesPerChannel uint32
	EncoderDelay      uint32
}

// ParseFrameHeader decodes the first 4 bytes of b.
//
// No sync word check is made. Header fields that would index past a table
// (reserved version, sample rate index 3, bitrate index 15) yield
// ErrInvalidHeader.
func ParseFrameHeader(b []byte) (FrameHeader, error) {
	if len(b) < HeaderSize {
		return FrameHeader{}, ErrShortHeader
	}

	unitIdx := b[1] >> 3 & 1
	versionIdx := (b[1] >> 3 & 3) ^ 2
	srIdx := b[2] >> 2 & 3
	brIdx := b[2] >> 4 & 0xf
	padding := uint32(b[2] >> 1 & 1)

	if int(versionIdx) >= len(sampleRateTable) {
		return FrameHeader{}, fmt.Errorf("%w: reserved version bits", ErrInvalidHeader)
	}
	if int(srIdx) >= len(sampleRateTable[versionIdx]) {
		return FrameHeader{}, fmt.Errorf("%w: sample rate index %d", ErrInvalidHeader, srIdx)
	}
	if int(brIdx) >= len(bitrateTable[0]) {
		return FrameHeader{}, fmt.Errorf("%w: bitrate index %d", ErrInvalidHeader, brIdx)
	}

	row := 0
	if versionIdx != 1 {
		row = 1
	}

	h := FrameHeader{
		SampleRate:        sampleRateTable[versionIdx][srIdx],
		Bitrate:           bitrateTable[row][brIdx] * 1000,
		NumChannels:       1,
		SamplesPerChannel: unitTable[unitIdx] * 8,
	}
	if b[3] < 0xC0 {
		h.NumChannels = 2
	}
	h.FrameSize = frameSize(unitTable[unitIdx], h.Bitrate, h.SampleRate, padding)

	return h, nil
}

// frameSize truncates like the firmware does.
func frameSize(unit, bitrate, sampleRate, padding uint32) uint32 {
	return unit*bitrate/sampleRate + padding
}

// Duration returns the playback length of the frame in microseconds.
func (h FrameHeader) Duration() uint64 {
	if h.SampleRate == 0 {
		return 0
	}
	return uint64(h.SamplesPerChannel) * 1_000_000 / uint64(h.SampleRate)
}
