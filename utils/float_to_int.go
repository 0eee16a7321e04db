// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float32ToInt16 scales a sample in [-1,1] to signed 16-bit PCM.
// Out of range input saturates.
func Float32ToInt16(x float32) int16 {
	return Float64ToInt16(float64(x))
}

// Float64ToInt16 scales a sample in [-1,1] to signed 16-bit PCM, rounding
// to nearest. Out of range input and NaN saturate (NaN maps to 0).
func Float64ToInt16(x float64) int16 {
	if math.IsNaN(x) {
		return 0
	}

	v := math.Round(x * 32768.0)
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}

	return int16(v)
}

// Int32ToInt16 keeps the 16 most significant bits of a 32-bit sample.
func Int32ToInt16(x int32) int16 {
	return int16(x >> 16)
}

// Uint8ToInt16 converts unsigned 8-bit PCM (bias 128) to signed 16-bit.
func Uint8ToInt16(x uint8) int16 {
	return (int16(x) - 128) << 8
}
