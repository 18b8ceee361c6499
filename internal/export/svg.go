package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/sortviz/internal/trace"
	"github.com/san-kum/sortviz/internal/viz"
)

type SVGOptions struct {
	Width      int
	Height     int
	Background string
	Normal     string
	Active     string
	Eliminated string
}

func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Width:      400,
		Height:     200,
		Background: "#0a0a0a",
		Normal:     "#00ffff",
		Active:     "#ff00ff",
		Eliminated: "#444444",
	}
}

func (o SVGOptions) color(s viz.State) string {
	switch s {
	case viz.StateActive:
		return o.Active
	case viz.StateEliminated:
		return o.Eliminated
	default:
		return o.Normal
	}
}

// StepSVG draws one step as bars, sized like the terminal renderers.
func StepSVG(step trace.Step, opts SVGOptions) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, opts.Width, opts.Height, opts.Width, opts.Height, opts.Background))

	n := len(step.Array)
	if n > 0 {
		slot := float64(opts.Width) / float64(n)
		barW := slot * 0.8
		for i, h := range viz.BarHeights(step, opts.Height) {
			x := float64(i)*slot + (slot-barW)/2
			y := opts.Height - h
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%d" width="%.1f" height="%d" fill="%s" data-value="%d"/>
`, x, y, barW, h, opts.color(viz.BarState(step, i)), step.Array[i]))
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// SeriesSVG plots values as a polyline, e.g. inversions per step.
func SeriesSVG(values []float64, width, height int, stroke string) string {
	if len(values) < 2 {
		return ""
	}

	minV, maxV := values[0], values[0]
	for _, v := range values {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	rng := maxV - minV
	if rng == 0 {
		rng = 1
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, stroke))

	last := float64(len(values) - 1)
	for i, v := range values {
		x := float64(i) / last * float64(width)
		y := float64(height) - (v-minV)/rng*float64(height)
		if i > 0 {
			sb.WriteString(" L")
		}
		sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
