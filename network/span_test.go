// SPDX-License-Identifier: MIT

package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCenteredSpan checks symmetry and the single-point case.
func TestCenteredSpan(t *testing.T) {
	assert.Equal(t, []float64{0}, centeredSpan(1, 3))
	assert.Equal(t, []float64{-1, 0, 1}, centeredSpan(3, 1))

	s := centeredSpan(6, 0.5)
	for i := range s {
		assert.InDelta(t, -s[len(s)-1-i], s[i], 1e-15)
	}
	assert.InDelta(t, 1.25, s[len(s)-1], 1e-15)
}
