// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/ajmp3/audio"
)

const pcmFormat = 1

// Writer streams canonical blocks into a 16-bit PCM WAV file. The header
// layout is taken from the first block. Writer implements audio.BlockWriter.
type Writer struct {
	w      io.WriteSeeker
	enc    *wav.Encoder
	layout goaudio.Format
	frames int
	closed bool
}

// NewWriter returns a Writer encoding into w. Nothing is written before the first block.
func NewWriter(w io.WriteSeeker) *Writer {
	return &Writer{w: w}
}

func (w *Writer) WriteBlock(b *audio.Block) error {
	if w.closed {
		return ErrWriterClosed
	}
	if !b.Canonical() {
		return fmt.Errorf("%w: %s", ErrNotCanonical, b.Format)
	}

	if w.enc == nil {
		w.layout = b.Layout
		w.enc = wav.NewEncoder(w.w, b.SampleRate(), 16, b.Channels(), pcmFormat)
	} else if b.Layout != w.layout {
		return fmt.Errorf("%w: have %+v, got %+v", ErrLayoutChanged, w.layout, b.Layout)
	}

	if err := w.enc.Write(b.IntBuffer()); err != nil {
		return fmt.Errorf("write wav block: %w", err)
	}
	w.frames++

	return nil
}

// Blocks reports how many blocks have been written.
func (w *Writer) Blocks() int { return w.frames }

// Close finalizes the WAV header. It does not close the underlying writer.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	if w.enc == nil {
		return nil
	}
	if err := w.enc.Close(); err != nil {
		return fmt.Errorf("finalize wav: %w", err)
	}

	return nil
}
