// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides the MP3 pieces of the accelerator decode path.
//
// # Frame Headers
//
// ParseFrameHeader reproduces the header interpretation of the audio job
// accelerator. Its lookup tables are taken from the firmware rather than
// the MPEG specification, and the version field is folded onto table rows
// with an XOR:
//
//	h, err := mp3.ParseFrameHeader(buf[:4])
//	if err != nil {
//	    // reserved version, sample rate or bitrate index
//	}
//	fmt.Println(h.SampleRate, h.Bitrate, h.NumChannels, h.FrameSize)
//
// The parser does not look for a sync word. It is intended for probing a
// stream whose frame boundaries are already known.
//
// # Splitting
//
// Splitter finds frame boundaries in a raw byte stream that arrives in
// arbitrary windows:
//
//	s := mp3.NewSplitter()
//	for len(data) > 0 {
//	    n, unit, err := s.Feed(data)
//	    data = data[n:]
//	    if unit != nil {
//	        // unit is one whole frame
//	    }
//	}
//
// # Decoding
//
// Engine wraps github.com/hajimehoshi/go-mp3 behind audio.Engine. Frames
// are queued with Submit and decoded blocks come out of Receive as
// interleaved 16-bit stereo PCM:
//
//	e, _ := mp3.NewEngine()
//	_ = e.Submit(unit)
//	block, err := e.Receive()
//
// # Limitations
//
// Note:
//   - Only Layer III frames are located by the Splitter
//   - Free format (bitrate index 0) streams cannot be split
//   - Engine output is always stereo
//   - MPEG-2.5 frames parse and split, but go-mp3 cannot decode them; the
//     engine fails with audio.ErrDecode
package mp3
