// Package viz renders trajectories and polynomial families in the
// terminal.
package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/rbhatt/numlab/internal/numeric"
)

const (
	defaultWidth  = 80
	defaultHeight = 10
)

var seriesColors = []asciigraph.AnsiColor{
	asciigraph.Red,
	asciigraph.Yellow,
	asciigraph.Green,
	asciigraph.Blue,
	asciigraph.Fuchsia,
	asciigraph.Aqua,
}

// TrajectoryPlot renders one graph per state component. Labels beyond the
// given slice fall back to y<i>.
func TrajectoryPlot(tr *numeric.Trajectory, labels []string, width, height int) string {
	if tr == nil || tr.Len() == 0 {
		return ""
	}
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}

	var b strings.Builder
	for i := 0; i < tr.Dim(); i++ {
		caption := fmt.Sprintf("y%d vs time", i)
		if i < len(labels) && labels[i] != "" {
			caption = labels[i]
		}
		graph := asciigraph.Plot(tr.Component(i),
			asciigraph.Height(height),
			asciigraph.Width(width),
			asciigraph.Caption(caption),
		)
		b.WriteString(graph)
		b.WriteString("\n\n")
	}
	return b.String()
}

// LegendrePlot overlays a polynomial family on one graph, one colored
// series per degree.
func LegendrePlot(rows [][]float64, width, height int) string {
	if len(rows) == 0 {
		return ""
	}
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = 2 * defaultHeight
	}

	colors := make([]asciigraph.AnsiColor, len(rows))
	legends := make([]string, len(rows))
	for n := range rows {
		colors[n] = seriesColors[n%len(seriesColors)]
		legends[n] = fmt.Sprintf("L%d(x)", n)
	}

	return asciigraph.PlotMany(rows,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("Legendre polynomials up to degree %d", len(rows)-1)),
		asciigraph.SeriesColors(colors...),
		asciigraph.SeriesLegends(legends...),
	)
}
