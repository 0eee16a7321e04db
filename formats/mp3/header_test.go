// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"errors"
	"testing"
)

// rawHeader builds 4 header bytes from their raw bit fields.
func rawHeader(version, layer, brIdx, srIdx, padding, b3 byte) []byte {
	return []byte{
		0xFF,
		0xE0 | version<<3 | layer<<1 | 1,
		brIdx<<4 | srIdx<<2 | padding<<1,
		b3,
	}
}

func TestParseFrameHeader_SampleRateTable(t *testing.T) {
	t.Parallel()

	for versionIdx := range 3 {
		for srIdx := range 3 {
			raw := byte(versionIdx) ^ 2
			h, err := ParseFrameHeader(rawHeader(raw, layerIII, 1, byte(srIdx), 0, 0))
			if err != nil {
				t.Fatalf("version_idx=%d sr_idx=%d: error = %v", versionIdx, srIdx, err)
			}

			want := sampleRateTable[versionIdx][srIdx]
			if h.SampleRate != want {
				t.Errorf("version_idx=%d sr_idx=%d: SampleRate = %#x, want %#x",
					versionIdx, srIdx, h.SampleRate, want)
			}
		}
	}
}

func TestParseFrameHeader_BitrateTable(t *testing.T) {
	t.Parallel()

	for versionIdx := range 3 {
		row := 1
		if versionIdx == 1 {
			row = 0
		}

		for brIdx := range 15 {
			raw := byte(versionIdx) ^ 2
			h, err := ParseFrameHeader(rawHeader(raw, layerIII, byte(brIdx), 0, 0, 0))
			if err != nil {
				t.Fatalf("version_idx=%d br_idx=%d: error = %v", versionIdx, brIdx, err)
			}

			want := bitrateTable[row][brIdx] * 1000
			if h.Bitrate != want {
				t.Errorf("version_idx=%d br_idx=%d: Bitrate = %d, want %d",
					versionIdx, brIdx, h.Bitrate, want)
			}
		}
	}
}

func TestParseFrameHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header []byte
		want   FrameHeader
	}{
		{
			name:   "version_idx 0 lowest row",
			header: rawHeader(2, layerIII, 5, 0, 0, 0x00),
			want: FrameHeader{
				SampleRate:        0x5622,
				Bitrate:           40000,
				NumChannels:       2,
				FrameSize:         0x48 * 40000 / 0x5622,
				SamplesPerChannel: 0x48 * 8,
			},
		},
		{
			name:   "mpeg1 128k 44.1k",
			header: []byte{0xFF, 0xFB, 0x90, 0x44},
			want: FrameHeader{
				SampleRate:        44100,
				Bitrate:           128000,
				NumChannels:       2,
				FrameSize:         417,
				SamplesPerChannel: 1152,
			},
		},
		{
			name:   "mpeg1 128k 44.1k padded mono",
			header: []byte{0xFF, 0xFB, 0x92, 0xC4},
			want: FrameHeader{
				SampleRate:        44100,
				Bitrate:           128000,
				NumChannels:       1,
				FrameSize:         418,
				SamplesPerChannel: 1152,
			},
		},
		{
			name:   "mpeg2.5 row",
			header: rawHeader(0, layerIII, 8, 2, 0, 0x00),
			want: FrameHeader{
				SampleRate:        8000,
				Bitrate:           64000,
				NumChannels:       2,
				FrameSize:         576,
				SamplesPerChannel: 576,
			},
		},
		{
			name:   "bitrate index zero",
			header: rawHeader(3, layerIII, 0, 1, 1, 0x00),
			want: FrameHeader{
				SampleRate:        48000,
				Bitrate:           0,
				NumChannels:       2,
				FrameSize:         1,
				SamplesPerChannel: 1152,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseFrameHeader(tt.header)
			if err != nil {
				t.Fatalf("ParseFrameHeader() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseFrameHeader() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseFrameHeader_IgnoresSync(t *testing.T) {
	t.Parallel()

	// only the field bits matter; sync and layer are not checked
	a, errA := ParseFrameHeader([]byte{0xFF, 0xFB, 0x90, 0x44})
	b, errB := ParseFrameHeader([]byte{0x00, 0x18, 0x90, 0x44})
	if errA != nil || errB != nil {
		t.Fatalf("errors = %v, %v", errA, errB)
	}
	if a != b {
		t.Errorf("headers differ: %+v vs %+v", a, b)
	}
}

func TestFrameSize_Truncates(t *testing.T) {
	t.Parallel()

	if got := frameSize(unitTable[0], 128000, 44100, 0); got != 208 {
		t.Errorf("frameSize() = %d, want 208", got)
	}
	if got := frameSize(unitTable[0], 128000, 44100, 1); got != 209 {
		t.Errorf("frameSize() padded = %d, want 209", got)
	}
	if got := frameSize(unitTable[1], 320000, 32000, 1); got != 1441 {
		t.Errorf("frameSize() largest = %d, want 1441", got)
	}
}

func TestParseFrameHeader_ChannelBoundary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		b3   byte
		want uint8
	}{
		{0x00, 2},
		{0x7F, 2},
		{0xBF, 2},
		{0xC0, 1},
		{0xFF, 1},
	}

	for _, tt := range tests {
		h, err := ParseFrameHeader([]byte{0xFF, 0xFB, 0x90, tt.b3})
		if err != nil {
			t.Fatalf("byte[3]=%#x: error = %v", tt.b3, err)
		}
		if h.NumChannels != tt.want {
			t.Errorf("byte[3]=%#x: NumChannels = %d, want %d", tt.b3, h.NumChannels, tt.want)
		}
	}
}

func TestParseFrameHeader_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		header  []byte
		wantErr error
	}{
		{name: "empty", header: nil, wantErr: ErrShortHeader},
		{name: "three bytes", header: []byte{0xFF, 0xFB, 0x90}, wantErr: ErrShortHeader},
		{name: "reserved version", header: rawHeader(1, layerIII, 9, 0, 0, 0), wantErr: ErrInvalidHeader},
		{name: "sample rate index 3", header: rawHeader(3, layerIII, 9, 3, 0, 0), wantErr: ErrInvalidHeader},
		{name: "bitrate index 15", header: rawHeader(3, layerIII, 15, 0, 0, 0), wantErr: ErrInvalidHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseFrameHeader(tt.header)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseFrameHeader() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidHeader) {
				t.Errorf("ParseFrameHeader() error = %v, want it to match ErrInvalidHeader", err)
			}
		})
	}
}

func TestFrameHeader_Duration(t *testing.T) {
	t.Parallel()

	h := FrameHeader{SampleRate: 44100, SamplesPerChannel: 1152}
	if got := h.Duration(); got != 26122 {
		t.Errorf("Duration() = %d, want 26122", got)
	}
	if got := (FrameHeader{}).Duration(); got != 0 {
		t.Errorf("zero Duration() = %d, want 0", got)
	}
}

func BenchmarkParseFrameHeader(b *testing.B) {
	hdr := []byte{0xFF, 0xFB, 0x90, 0x44}

	b.ReportAllocs()
	for range b.N {
		_, _ = ParseFrameHeader(hdr)
	}
}
