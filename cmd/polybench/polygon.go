package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hupe1980/polygo/geom"
)

// ring is a polygon read from a file.
type ring struct {
	xs, ys []float64
}

func (r ring) bounds() geom.Box {
	b := geom.EmptyBox()
	for i := range r.xs {
		b = b.Extend(geom.Point{X: r.xs[i], Y: r.ys[i]})
	}
	return b
}

// shifted returns a copy of r translated by dx along x.
func (r ring) shifted(dx float64) ring {
	out := ring{xs: make([]float64, len(r.xs)), ys: append([]float64(nil), r.ys...)}
	for i, x := range r.xs {
		out.xs[i] = x + dx
	}
	return out
}

func readPolygonFile(path string) (ring, error) {
	f, err := os.Open(path)
	if err != nil {
		return ring{}, err
	}
	defer f.Close()

	r, err := readPolygon(f)
	if err != nil {
		return ring{}, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// readPolygon parses one "x y" vertex per line. Blank lines and lines
// starting with '#' are skipped; extra columns are ignored.
func readPolygon(rd io.Reader) (ring, error) {
	var r ring

	sc := bufio.NewScanner(rd)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) < 2 {
			return ring{}, fmt.Errorf("line %d: want \"x y\", got %q", line, text)
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return ring{}, fmt.Errorf("line %d: %w", line, err)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return ring{}, fmt.Errorf("line %d: %w", line, err)
		}

		r.xs = append(r.xs, x)
		r.ys = append(r.ys, y)
	}
	if err := sc.Err(); err != nil {
		return ring{}, err
	}
	if len(r.xs) == 0 {
		return ring{}, fmt.Errorf("no vertices")
	}
	return r, nil
}
