// SPDX-License-Identifier: EPL-2.0

// Package audio provides the building blocks shared by the decode path.
//
// This package contains:
//   - Engine, the decode capability (Submit compressed units, Receive blocks)
//   - Splitter, the capability locating unit boundaries in a raw byte stream
//   - Block, one decoded frame in any supported sample format
//   - Normalizer, which converts blocks to canonical 16-bit interleaved PCM
//   - Registry for engine backends
//
// # Engines
//
// An Engine is fed one compressed unit at a time and drained until it
// reports ErrNoneReady or ErrEndOfStream:
//
//	if err := engine.Submit(unit); err != nil {
//	    // fatal
//	}
//	for {
//	    block, err := engine.Receive()
//	    if audio.Transient(err) {
//	        break
//	    }
//	    if err != nil {
//	        // fatal
//	    }
//	    // use block
//	}
//
// # Normalization
//
// Backends may produce planar or floating point output. The Normalizer keeps
// one conversion context sized for the last seen layout and replaces it when
// the layout changes:
//
//	n := audio.NewNormalizer()
//	pcm, err := n.Normalize(block)
//	// pcm.Format == audio.FormatS16
//
// Only the sample representation changes; channel count and sample rate are
// preserved. Float input is clipped to [-1, 1].
//
// # Registry
//
//	reg := audio.NewRegistry()
//	reg.Register("mp3", mp3.NewEngine)
//	engine, err := reg.Open("mp3")
package audio
