// SPDX-License-Identifier: EPL-2.0

package mp3

// SkipID3v2 returns data without a leading ID3v2 tag, if it has one.
// Truncated tags yield an empty slice.
func SkipID3v2(data []byte) []byte {
	const headerLen = 10

	if len(data) < headerLen || string(data[:3]) != "ID3" {
		return data
	}

	// tag size is a 28-bit synchsafe integer
	size := int(data[6]&0x7f)<<21 | int(data[7]&0x7f)<<14 | int(data[8]&0x7f)<<7 | int(data[9]&0x7f)
	size += headerLen
	if data[5]&0x10 != 0 {
		size += headerLen // footer
	}

	if size > len(data) {
		return data[len(data):]
	}

	return data[size:]
}
