// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int16
	}{
		{name: "zero", input: 0.0, want: 0},
		{name: "max positive saturates", input: 1.0, want: math.MaxInt16},
		{name: "max negative", input: -1.0, want: math.MinInt16},
		{name: "half positive", input: 0.5, want: 16384},
		{name: "half negative", input: -0.5, want: -16384},
		{name: "quarter positive", input: 0.25, want: 8192},
		{name: "small positive rounds", input: 0.001, want: 33},
		{name: "small negative rounds", input: -0.001, want: -33},
		{name: "clamp over max", input: 1.5, want: math.MaxInt16},
		{name: "clamp over min", input: -1.5, want: math.MinInt16},
		{name: "clamp way over max", input: 100.0, want: math.MaxInt16},
		{name: "clamp way under min", input: -100.0, want: math.MinInt16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Float32ToInt16(tt.input)
			if got != tt.want {
				t.Errorf("Float32ToInt16(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFloat64ToInt16_NaN(t *testing.T) {
	t.Parallel()

	if got := Float64ToInt16(math.NaN()); got != 0 {
		t.Errorf("Float64ToInt16(NaN) = %v, want 0", got)
	}
	if got := Float64ToInt16(math.Inf(1)); got != math.MaxInt16 {
		t.Errorf("Float64ToInt16(+Inf) = %v, want %v", got, math.MaxInt16)
	}
	if got := Float64ToInt16(math.Inf(-1)); got != math.MinInt16 {
		t.Errorf("Float64ToInt16(-Inf) = %v, want %v", got, math.MinInt16)
	}
}

// TestFloat32ToInt16Monotonic tests that function is monotonic
func TestFloat32ToInt16Monotonic(t *testing.T) {
	t.Parallel()

	prev := Float32ToInt16(-1.0)
	for f := -0.99; f <= 1.0; f += 0.01 {
		curr := Float32ToInt16(float32(f))
		if curr < prev {
			t.Errorf("Float32ToInt16 not monotonic: f=%v gives %v, but previous was %v",
				f, curr, prev)
		}
		prev = curr
	}
}

func TestInt32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input int32
		want  int16
	}{
		{input: 0, want: 0},
		{input: math.MaxInt32, want: math.MaxInt16},
		{input: math.MinInt32, want: math.MinInt16},
		{input: 0x12345678, want: 0x1234},
		{input: -65536, want: -1},
	}

	for _, tt := range tests {
		if got := Int32ToInt16(tt.input); got != tt.want {
			t.Errorf("Int32ToInt16(%#x) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestUint8ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input uint8
		want  int16
	}{
		{input: 128, want: 0},
		{input: 0, want: math.MinInt16},
		{input: 255, want: 127 << 8},
		{input: 129, want: 256},
	}

	for _, tt := range tests {
		if got := Uint8ToInt16(tt.input); got != tt.want {
			t.Errorf("Uint8ToInt16(%d) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

// BenchmarkFloat32ToInt16Realistic simulates converting audio buffer
func BenchmarkFloat32ToInt16Realistic(b *testing.B) {
	floatSamples := make([]float32, 8000)
	int16Samples := make([]int16, 8000)

	for i := range floatSamples {
		floatSamples[i] = float32(math.Sin(float64(i) * 0.1))
	}

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		for j := range floatSamples {
			int16Samples[j] = Float32ToInt16(floatSamples[j])
		}
	}
}

// TestFloat32ToInt16_ZeroAllocs verifies no heap allocations
func TestFloat32ToInt16_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	allocs := testing.AllocsPerRun(1000, func() {
		_ = Float32ToInt16(0.5)
	})

	if allocs > 0 {
		t.Errorf("Float32ToInt16 allocated %v times, want 0", allocs)
	}
}
