// SPDX-License-Identifier: MIT

package network_test

import (
	"testing"

	"github.com/jysru/coherent-beams/network"
)

// benchmarkGenerate runs Generate on spec b.N times and fails on error.
func benchmarkGenerate(b *testing.B, spec network.Spec) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := network.Generate(spec); err != nil {
			b.Fatalf("Generate failed: %v", err)
		}
	}
}

// BenchmarkSquare_100 benchmarks a 100×100 grid (10 000 points).
func BenchmarkSquare_100(b *testing.B) {
	benchmarkGenerate(b, network.Spec{Kind: network.KindSquare, Size: 100, Pitch: 1})
}

// BenchmarkTriangle_140 benchmarks a 140-row triangle (9 870 points).
func BenchmarkTriangle_140(b *testing.B) {
	benchmarkGenerate(b, network.Spec{Kind: network.KindTriangle, Size: 140, Pitch: 1})
}

// BenchmarkHexagon_57 benchmarks a 57-ring hexagon (9 919 points), rotated
// and translated so every pipeline stage runs.
func BenchmarkHexagon_57(b *testing.B) {
	benchmarkGenerate(b, network.Spec{
		Kind: network.KindHexagon, Rings: 57, Pitch: 1, Angle: 0.5,
	})
}
