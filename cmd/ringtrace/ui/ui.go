// Package ui holds the terminal styling for ringtrace reports.
package ui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/ringtrace/stats"
)

// Palette — muted, dark-terminal friendly.
var (
	purple = lipgloss.Color("99")
	green  = lipgloss.Color("76")
	dim    = lipgloss.Color("243")
	faint  = lipgloss.Color("238")
)

// Base styles available for direct use.
var (
	AccentStyle = lipgloss.NewStyle().Foreground(purple)
	GoodStyle   = lipgloss.NewStyle().Foreground(green)
	MutedStyle  = lipgloss.NewStyle().Foreground(dim)
	BoldStyle   = lipgloss.NewStyle().Bold(true)
	LabelStyle  = lipgloss.NewStyle().Foreground(dim)
)

// Accent returns s in the accent color.
func Accent(s string) string { return AccentStyle.Render(s) }

// Muted returns s dimmed.
func Muted(s string) string { return MutedStyle.Render(s) }

// Title returns a bold section heading.
func Title(s string) string { return BoldStyle.Render(s) }

// Pair holds one key-value line for KeyValues.
type Pair struct {
	key   string
	value string
}

// KV creates a key-value pair.
func KV(key string, value any) Pair {
	return Pair{key: key, value: fmt.Sprint(value)}
}

// KeyValues renders aligned "key:  value" lines with a trailing newline.
func KeyValues(pairs ...Pair) string {
	maxLen := 0
	for _, p := range pairs {
		if len(p.key) > maxLen {
			maxLen = len(p.key)
		}
	}
	var sb strings.Builder
	for _, p := range pairs {
		label := fmt.Sprintf("%-*s", maxLen+1, p.key+":")
		sb.WriteString("  " + LabelStyle.Render(label) + " " + p.value + "\n")
	}
	return sb.String()
}

// HistogramTable renders a mixin histogram as a bordered two-column
// table. Row i counts the rings with i mixins; the last row pools
// everything above the tracked maximum.
func HistogramTable(title string, h stats.Histogram) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(faint)).
		Headers("MIXINS", "RINGS")
	for i, c := range h {
		label := strconv.Itoa(i)
		if i == stats.MaxBucket {
			label = fmt.Sprintf("%d+", stats.MaxBucket)
		}
		t.Row(label, strconv.Itoa(c))
	}
	return Title(title) + "\n" + t.Render() + "\n"
}

// SizeHistogramLine renders a size→count map as "size×count" pairs in
// ascending size order.
func SizeHistogramLine(h map[int]int) string {
	sizes := make([]int, 0, len(h))
	for s := range h {
		sizes = append(sizes, s)
	}
	sort.Ints(sizes)
	parts := make([]string, 0, len(sizes))
	for _, s := range sizes {
		parts = append(parts, fmt.Sprintf("%d×%d", s, h[s]))
	}
	if len(parts) == 0 {
		return Muted("none")
	}
	return strings.Join(parts, "  ")
}
