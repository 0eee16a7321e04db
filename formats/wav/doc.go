// SPDX-License-Identifier: EPL-2.0

// Package wav writes decoded audio blocks to WAV files.
//
// The Writer uses github.com/go-audio/wav for the RIFF layout. It accepts
// canonical blocks only (interleaved signed 16-bit PCM), which is what the
// decode session hands out, so it can be used as a PCM dump tap:
//
//	f, _ := os.Create("dump.wav")
//	defer f.Close()
//
//	w := wav.NewWriter(f)
//	defer w.Close()
//
//	s, _ := ajm.NewSession(mp3.NewEngine, mp3.NewSplitter(), ajm.WithBlockWriter(w))
//
// The channel count and sample rate in the header come from the first
// block. Later blocks with another layout are rejected with
// ErrLayoutChanged.
package wav
