// SPDX-License-Identifier: EPL-2.0

// Package ajmp3 decodes MP3 streams the way the audio job accelerator (AJM)
// does: frame by frame, through bounded input and output windows, into
// interleaved 16-bit PCM.
//
// The building blocks live in subpackages:
//   - formats/mp3: frame header parser, frame splitter and go-mp3 engine
//   - audio: blocks, sample format normalizer and engine registry
//   - ajm: the decode session driven by the guest
//   - formats/wav: WAV writer for decoded blocks
//
// # Quick Start
//
// Decode a whole buffer with the default MP3 engine:
//
//	pcm, stats, err := ajmp3.DecodeAll(data, 4096, 16384)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(stats.NumFrames, stats.DecodedSamples, len(pcm))
//
// Pipeline exposes the window sizes, the engine and the splitter:
//
//	p := ajmp3.Pipeline{
//	    InChunk:  1024,
//	    OutChunk: 4608,
//	    Options:  []ajm.Option{ajm.WithLogger(logger)},
//	}
//	pcm, stats, err := p.Decode(data)
//
// Probe walks the frame headers without decoding:
//
//	info, err := ajmp3.Probe(data, nil)
//	fmt.Println(info.Frames, info.SampleRate, info.Duration)
//
// For guest-driven decoding use ajm.Session directly.
package ajmp3
