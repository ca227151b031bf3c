package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/hupe1980/polygo/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mathext/prng"
)

func writeSquare(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "polygon.txt")
	require.NoError(t, os.WriteFile(path, []byte("0 0\n1 0\n1 1\n0 1\n"), 0o600))
	return path
}

func execute(args ...string) (string, error) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRun(t *testing.T) {
	out, err := execute("run",
		"--polygon", writeSquare(t),
		"--blocks", "3",
		"--points", "2000",
		"--log-level", "error",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "polygons=3 vertices=12 points=2000")
	assert.Contains(t, out, "time elapsed in benchmark:")
}

func TestRun_WithoutCoefficients(t *testing.T) {
	out, err := execute("run",
		"--polygon", writeSquare(t),
		"--coefficients", "0",
		"--points", "100",
		"--log-format", "json",
		"--log-level", "error",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "polygons=5 vertices=20 points=100")
}

func TestRun_InvalidFlags(t *testing.T) {
	path := writeSquare(t)

	tests := []struct {
		name string
		args []string
	}{
		{"missing polygon", []string{"run"}},
		{"log format", []string{"run", "--polygon", path, "--log-format", "xml"}},
		{"log level", []string{"run", "--polygon", path, "--log-level", "loud"}},
		{"blocks", []string{"run", "--polygon", path, "--blocks", "0"}},
		{"workers", []string{"run", "--polygon", path, "--workers", "-2", "--log-level", "error"}},
		{"missing file", []string{"run", "--polygon", filepath.Join(t.TempDir(), "none.txt")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(tt.args...)
			require.Error(t, err)
		})
	}
}

func TestSamplePoints(t *testing.T) {
	src := prng.NewMT19937()
	src.Seed(1)

	extent := geom.BoxOf(geom.Point{X: 0, Y: 0}, geom.Point{X: 20, Y: 1})
	xs, ys := samplePoints(src, extent, 1, 500)
	require.Len(t, xs, 500)

	padded := geom.BoxOf(geom.Point{X: -1, Y: -1}, geom.Point{X: 21, Y: 2})
	for i := range xs {
		assert.True(t, padded.Contains(geom.Point{X: xs[i], Y: ys[i]}))
	}

	src.Seed(1)
	xs2, ys2 := samplePoints(src, extent, 1, 500)
	assert.Equal(t, xs, xs2)
	assert.Equal(t, ys, ys2)
}
