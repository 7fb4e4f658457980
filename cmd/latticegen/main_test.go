// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jysru/coherent-beams/network"
)

// TestRun_CSV checks the CSV header and records of a three-point line.
func TestRun_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run([]string{"-kind", "line", "-number", "3", "-pitch", "1"}, &buf))

	recs, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 4)
	assert.Equal(t, []string{"lattice", "kind", "index", "x", "y"}, recs[0])
	assert.Equal(t, []string{"0", "line", "0", "-1", "0"}, recs[1])
	assert.Equal(t, []string{"0", "line", "2", "1", "0"}, recs[3])
}

// TestRun_JSON checks the JSON document of a translated hexagon.
func TestRun_JSON(t *testing.T) {
	var buf bytes.Buffer
	args := []string{"-kind", "hexagon", "-rings", "1", "-cx", "10", "-cy", "-5", "-format", "json"}
	require.NoError(t, run(args, &buf))

	var got []jsonLattice
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "hexagon", got[0].Kind)
	assert.Equal(t, 7, got[0].Number)
	assert.Len(t, got[0].Points, 7)
	assert.Equal(t, [2]float64{10, -5}, got[0].Points[3], "center point of the equator")
}

// TestRun_ConfigAndPlot drives the YAML path and writes one plot per lattice.
func TestRun_ConfigAndPlot(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "lattices.yaml")
	doc := "lattices:\n  - kind: triangle\n    size: 3\n    pitch: 1\n  - kind: square\n    size: 2\n    pitch: 1\n"
	require.NoError(t, os.WriteFile(cfg, []byte(doc), 0o600))

	out := filepath.Join(dir, "points.csv")
	plot := filepath.Join(dir, "lattice.png")
	require.NoError(t, run([]string{"-config", cfg, "-out", out, "-plot", plot}, nil))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	recs, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	assert.Len(t, recs, 1+6+4)

	for _, name := range []string{"lattice-0.png", "lattice-1.png"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}

// TestRun_Errors covers usage and validation failures.
func TestRun_Errors(t *testing.T) {
	var buf bytes.Buffer

	err := run(nil, &buf)
	assert.ErrorIs(t, err, errUsage)

	err = run([]string{"-kind", "line", "-config", "x.yaml"}, &buf)
	assert.ErrorIs(t, err, errUsage)

	err = run([]string{"-kind", "line", "-number", "2", "-format", "xml"}, &buf)
	assert.ErrorIs(t, err, errUsage)

	err = run([]string{"-kind", "octagon"}, &buf)
	assert.ErrorIs(t, err, network.ErrUnsupportedVariant)

	err = run([]string{"-kind", "square", "-size", "0"}, &buf)
	assert.ErrorIs(t, err, network.ErrInvalidShape)

	err = run([]string{"-kind", "square", "-size", "2", "-pitch", "-1"}, &buf)
	assert.ErrorIs(t, err, network.ErrInvalidPitch)

	err = run([]string{"-h"}, &buf)
	assert.True(t, errors.Is(err, flag.ErrHelp))
}

// TestPlotPathFor checks index suffixing.
func TestPlotPathFor(t *testing.T) {
	assert.Equal(t, "a/hex.png", plotPathFor("a/hex.png", 0, 1))
	assert.Equal(t, "a/hex-2.svg", plotPathFor("a/hex.svg", 2, 3))
}
