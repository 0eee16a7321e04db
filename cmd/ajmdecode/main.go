// SPDX-License-Identifier: EPL-2.0

// Command ajmdecode inspects and decodes MP3 files through the AJM decode
// session.
//
//	ajmdecode probe song.mp3
//	ajmdecode decode song.mp3 song.wav --in-chunk 1024 --out-chunk 4608
package main

func main() {
	Execute()
}
