// SPDX-License-Identifier: EPL-2.0

package ajmp3

import (
	"time"

	"github.com/ik5/ajmp3/formats/mp3"
)

// ProbeInfo summarizes the frames of an MP3 stream.
type ProbeInfo struct {
	Frames      int
	SampleRate  uint32 // of the first frame
	NumChannels uint8  // of the first frame
	MinBitrate  uint32
	MaxBitrate  uint32
	Samples     uint64 // per channel, summed over all frames
	Duration    time.Duration
	// Trailing counts bytes of an unfinished frame at the end of data.
	Trailing int
}

// VBR reports whether frames with different bitrates were seen.
func (p ProbeInfo) VBR() bool { return p.MinBitrate != p.MaxBitrate }

// Probe walks every frame of data with an mp3.Splitter and reports what the
// headers say. Nothing is decoded. fn, if not nil, is called for every frame.
func Probe(data []byte, fn func(i int, h mp3.FrameHeader)) (ProbeInfo, error) {
	var info ProbeInfo

	data = mp3.SkipID3v2(data)
	s := mp3.NewSplitter()

	var micros uint64
	for len(data) > 0 {
		n, unit, err := s.Feed(data)
		if err != nil {
			return info, err
		}
		data = data[n:]
		if unit == nil {
			continue
		}

		h := s.Header()
		if info.Frames == 0 {
			info.SampleRate = h.SampleRate
			info.NumChannels = h.NumChannels
			info.MinBitrate = h.Bitrate
			info.MaxBitrate = h.Bitrate
		}
		info.MinBitrate = min(info.MinBitrate, h.Bitrate)
		info.MaxBitrate = max(info.MaxBitrate, h.Bitrate)
		info.Samples += uint64(h.SamplesPerChannel)
		micros += h.Duration()

		if fn != nil {
			fn(info.Frames, h)
		}
		info.Frames++
	}

	info.Trailing = s.Buffered()
	info.Duration = time.Duration(micros) * time.Microsecond

	if info.Frames == 0 {
		return info, ErrNoFrames
	}

	return info, nil
}
