package domain

import (
	"math"
	"strconv"
	"strings"
)

const (
	minChartWidth  = 8
	minChartHeight = 3

	markPoint = '●'
	markLine  = '·'
)

// Chart plots entry values in insertion order as a line chart of width by
// height cells. The y axis starts at zero unless a value is negative. It
// returns nil when there is nothing to plot.
func Chart(entries []Entry, width, height int) []string {
	if len(entries) == 0 {
		return nil
	}
	width = max(width, minChartWidth)
	height = max(height, minChartHeight)

	lo, hi := 0.0, entries[0].Value
	for _, e := range entries {
		lo = math.Min(lo, e.Value)
		hi = math.Max(hi, e.Value)
	}
	if hi == lo {
		hi = lo + 1
	}

	grid := make([][]rune, height)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", width))
	}
	row := func(v float64) int {
		return int(math.Round((hi - v) / (hi - lo) * float64(height-1)))
	}
	col := func(i int) int {
		if len(entries) == 1 {
			return 0
		}
		return i * (width - 1) / (len(entries) - 1)
	}

	for i := 1; i < len(entries); i++ {
		x0, x1 := col(i-1), col(i)
		v0, v1 := entries[i-1].Value, entries[i].Value
		for x := x0 + 1; x < x1; x++ {
			v := v0 + (v1-v0)*float64(x-x0)/float64(x1-x0)
			grid[row(v)][x] = markLine
		}
	}
	for i, e := range entries {
		grid[row(e.Value)][col(i)] = markPoint
	}

	top, bottom := formatAxis(hi), formatAxis(lo)
	gutter := max(len(top), len(bottom))
	lines := make([]string, 0, height+1)
	for r, cells := range grid {
		label := ""
		switch r {
		case 0:
			label = top
		case height - 1:
			label = bottom
		}
		lines = append(lines, padLeft(label, gutter)+" │"+strings.TrimRight(string(cells), " "))
	}
	lines = append(lines, strings.Repeat(" ", gutter)+" └"+strings.Repeat("─", width))
	return lines
}

func formatAxis(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func padLeft(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return strings.Repeat(" ", n-len(s)) + s
}
