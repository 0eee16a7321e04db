// SPDX-License-Identifier: EPL-2.0

package mp3

// layerIII is the raw layer field value for Layer III frames.
const layerIII = 1

// Splitter cuts a raw MP3 byte stream into whole frames.
//
// It may be fed arbitrary windows of the stream: bytes of an unfinished frame
// are kept until the rest arrives. Garbage between frames is skipped by
// searching for the next header that parses. Splitter implements
// audio.Splitter.
type Splitter struct {
	hdr    []byte // candidate header bytes
	unit   []byte // frame being collected
	need   int    // bytes missing from unit, 0 while searching
	frames uint64
	header FrameHeader
}

// NewSplitter returns a splitter waiting for the first frame header.
func NewSplitter() *Splitter {
	return &Splitter{
		hdr:  make([]byte, 0, HeaderSize),
		unit: make([]byte, 0, 1441),
	}
}

// Feed consumes bytes from buf. A non-nil unit is a complete frame, header
// included, owned by the caller. At least one byte is consumed whenever buf
// is not empty.
func (s *Splitter) Feed(buf []byte) (int, []byte, error) {
	consumed := 0

	for consumed < len(buf) {
		if s.need == 0 {
			s.hdr = append(s.hdr, buf[consumed])
			consumed++
			s.resync()

			if len(s.hdr) < HeaderSize {
				continue
			}

			h, ok := s.candidate()
			if !ok {
				s.drop()
				s.resync()
				continue
			}

			s.header = h
			s.unit = append(s.unit[:0], s.hdr...)
			s.hdr = s.hdr[:0]
			s.need = int(h.FrameSize) - HeaderSize
			continue
		}

		n := min(s.need, len(buf)-consumed)
		s.unit = append(s.unit, buf[consumed:consumed+n]...)
		consumed += n
		s.need -= n

		if s.need == 0 {
			unit := make([]byte, len(s.unit))
			copy(unit, s.unit)
			s.unit = s.unit[:0]
			s.frames++
			return consumed, unit, nil
		}
	}

	return consumed, nil, nil
}

// candidate parses the collected header bytes as a Layer III frame start.
func (s *Splitter) candidate() (FrameHeader, bool) {
	h, err := ParseFrameHeader(s.hdr)
	if err != nil {
		return FrameHeader{}, false
	}
	// free format and undersized frames cannot be split by length
	if h.FrameSize <= HeaderSize {
		return FrameHeader{}, false
	}
	return h, true
}

// resync drops leading bytes until hdr could still begin a frame header.
func (s *Splitter) resync() {
	for len(s.hdr) > 0 && !syncPrefix(s.hdr) {
		s.drop()
	}
}

// drop shifts out the first candidate byte in place.
func (s *Splitter) drop() {
	s.hdr = append(s.hdr[:0], s.hdr[1:]...)
}

func syncPrefix(b []byte) bool {
	if b[0] != 0xFF {
		return false
	}
	if len(b) > 1 {
		if b[1]&0xE0 != 0xE0 || b[1]>>1&3 != layerIII {
			return false
		}
	}
	return true
}

// Header returns the header of the last frame the splitter locked onto.
func (s *Splitter) Header() FrameHeader { return s.header }

// Frames counts complete frames returned so far.
func (s *Splitter) Frames() uint64 { return s.frames }

// Buffered reports how many bytes are held for an unfinished frame or header.
func (s *Splitter) Buffered() int {
	if s.need > 0 {
		return len(s.unit)
	}
	return len(s.hdr)
}

// Reset drops any partial frame so the next Feed starts a fresh search.
func (s *Splitter) Reset() {
	s.hdr = s.hdr[:0]
	s.unit = s.unit[:0]
	s.need = 0
}
