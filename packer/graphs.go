package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/taotao54321/starsoldier-ground-compress/codec"
	"github.com/wcharczuk/go-chart/v2"
	//exposes "chart"
)

// Scatter plot for X, Y ints
func scatterIntMap(path string, title string, xName string, yName string, results map[int]int) error {
	// Create sorted list
	keys := make([]int, 0, len(results))
	for i := range results {
		keys = append(keys, i)
	}
	sort.Ints(keys)

	// Convert map to 2 arrays
	xvals := make([]float64, 0, len(keys))
	yvals := make([]float64, 0, len(keys))
	maxY := 1.0
	for _, k := range keys {
		xvals = append(xvals, float64(k))
		yvals = append(yvals, float64(results[k]))
		if yvals[len(yvals)-1] > maxY {
			maxY = yvals[len(yvals)-1]
		}
	}
	// A series needs two points to draw.
	if len(xvals) == 1 {
		xvals = append(xvals, xvals[0]+1)
		yvals = append(yvals, 0)
	}

	graph := chart.Chart{
		Title: title,
		XAxis: chart.XAxis{Name: xName},
		YAxis: chart.YAxis{
			Name:  yName,
			Range: &chart.ContinuousRange{Min: 0, Max: maxY},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Style: chart.Style{
					DotWidth: 3,
				},
				XValues: xvals,
				YValues: yvals,
			},
		},
	}

	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	err = graph.Render(chart.SVG, fh)
	if cerr := fh.Close(); err == nil {
		err = cerr
	}
	return err
}

// Write the histograms of a pack into dir, returning the files written.
func WriteGraphs(dir string, stats *codec.Stats) ([]string, error) {
	if stats.Rows == 0 {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	// Token usage: unit 0 is literals.
	tokens := map[int]int{0: stats.Literals}
	for unit := 1; unit <= codec.MaxUnit; unit++ {
		tokens[unit] = stats.Runs[unit]
	}

	graphs := []struct {
		name, title, x, y string
		data              map[int]int
	}{
		{"codelens.svg", "Row code length", "bytes", "rows", stats.CodeLens},
		{"tokens.svg", "Tokens by run unit", "unit (0 = literal)", "tokens", tokens},
	}

	var written []string
	for _, g := range graphs {
		path := filepath.Join(dir, g.name)
		if err := scatterIntMap(path, g.title, g.x, g.y, g.data); err != nil {
			return written, fmt.Errorf("graph %s: %w", g.name, err)
		}
		written = append(written, path)
	}
	return written, nil
}
