// SPDX-License-Identifier: EPL-2.0

// Package ajm implements the MP3 decode session of the audio job
// accelerator.
//
// A Session owns a decode engine, a frame splitter and a sample format
// conversion context. The guest calls DecodeChunk repeatedly with whatever
// input and output windows it has; the session splits the input into whole
// frames, decodes them and writes canonical interleaved 16-bit PCM:
//
//	s, err := ajm.NewSession(mp3.NewEngine, mp3.NewSplitter())
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	job := &ajm.JobOutput{MFrame: &ajm.MFrameResult{}}
//	remIn, remOut, err := s.DecodeChunk(in, out, job)
//
// When the output window cannot take the next decoded block DecodeChunk
// returns early and keeps that block; it is written first on the next call.
// Flush empties the session at the end of a stream without more input.
//
// Fatal errors leave the session in StateFailed. Every later call fails
// with ErrSessionFailed until Reset allocates a new engine.
package ajm
