// Package views renders dropdown snapshots with lipgloss.
package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dropdown/internal/ui/state"
)

const (
	DefaultWidth      = 40
	DefaultMaxVisible = 8
	minWidth          = 12
)

// Renderer keeps the latest snapshot and the list viewport. It satisfies
// the widget's renderer contract; View turns the stored snapshot into text.
type Renderer struct {
	styles     *Styles
	snap       state.Snapshot
	width      int
	maxVisible int
	offset     int
	zones      zones
}

// NewRenderer creates a renderer. Non-positive sizes use the defaults.
func NewRenderer(width, maxVisible int) *Renderer {
	r := &Renderer{styles: NewStyles()}
	r.SetMaxVisible(maxVisible)
	r.SetWidth(width)
	return r
}

// Render stores snap. The viewport is clamped when the list shrank.
func (r *Renderer) Render(snap state.Snapshot) {
	r.snap = snap
	r.offset = clampOffset(r.offset, r.maxVisible, len(snap.Rows))
}

// ScrollIntoView moves the viewport so row index is visible
func (r *Renderer) ScrollIntoView(index int) {
	r.offset = ensureVisible(index, r.offset, r.maxVisible, len(r.snap.Rows))
}

// SetMaxVisible sets how many rows the open list shows
func (r *Renderer) SetMaxVisible(n int) {
	if n <= 0 {
		n = DefaultMaxVisible
	}
	r.maxVisible = n
	r.offset = clampOffset(r.offset, r.maxVisible, len(r.snap.Rows))
}

// SetWidth sets the widget width in cells
func (r *Renderer) SetWidth(width int) {
	if width <= 0 {
		width = DefaultWidth
	}
	if width < minWidth {
		width = minWidth
	}
	r.width = width
}

// Styles returns the styles in use
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Snapshot returns the last rendered snapshot
func (r *Renderer) Snapshot() state.Snapshot {
	return r.snap
}

// Offset returns the index of the first visible row
func (r *Renderer) Offset() int {
	return r.offset
}

// HitTest maps a cell, relative to the widget origin, to the part drawn
// there by the last View call
func (r *Renderer) HitTest(x, y int) Hit {
	return r.zones.hit(x, y)
}

// View produces the widget: label, trigger, listbox when open and the
// status line that carries announcements
func (r *Renderer) View() string {
	snap := r.snap
	var sections []string
	z := zones{open: snap.Open}
	y := 0

	if snap.Label != "" {
		label := r.styles.Label.Render(truncate(snap.Label, r.width))
		sections = append(sections, label)
		y += lipgloss.Height(label)
	}

	button := r.renderButton(snap)
	h := lipgloss.Height(button)
	z.trigger = span{top: y, bottom: y + h - 1, width: lipgloss.Width(button)}
	sections = append(sections, button)
	y += h

	if snap.Open {
		list, options := r.renderList(snap, y)
		h := lipgloss.Height(list)
		z.list = span{top: y, bottom: y + h - 1, width: lipgloss.Width(list)}
		z.options = options
		sections = append(sections, list)
		y += h
	}

	// The status line is always present so the layout does not jump
	status := " "
	if snap.Announcement != "" {
		status = truncate(snap.Announcement, r.width)
	}
	sections = append(sections, r.styles.Status.Render(status))

	r.zones = z
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (r *Renderer) renderButton(snap state.Snapshot) string {
	style := r.styles.Button
	caret := "▾"
	if snap.Open {
		style = r.styles.ButtonOpen
		caret = "▴"
	}
	// border and padding take four cells, the caret two more
	inner := r.width - 4
	text := truncate(snap.ButtonText, inner-2)
	gap := inner - lipgloss.Width(text) - 1
	if gap < 1 {
		gap = 1
	}
	if snap.SelectedID == "" {
		text = r.styles.Placeholder.Render(text)
	}
	return style.Render(text + strings.Repeat(" ", gap) + caret)
}

// renderList draws the visible window of rows. top is the line the list
// starts on, used to record option positions.
func (r *Renderer) renderList(snap state.Snapshot, top int) (string, []optionLine) {
	inner := r.width - 2
	total := len(snap.Rows)
	start := r.offset
	end := start + r.maxVisible
	if end > total {
		end = total
	}

	var lines []string
	var options []optionLine
	y := top + 1 // border

	if start > 0 {
		lines = append(lines, r.styles.Scroll.Render(pad(fmt.Sprintf("↑ %d more", start), inner)))
		y++
	}
	if total == 0 {
		lines = append(lines, r.styles.Placeholder.Render(pad("(empty)", inner)))
	}
	for i := start; i < end; i++ {
		row := snap.Rows[i]
		lines = append(lines, r.renderRow(row, inner))
		options = append(options, optionLine{y: y, id: row.ID, index: i})
		y++
	}
	if end < total {
		lines = append(lines, r.styles.Scroll.Render(pad(fmt.Sprintf("↓ %d more", total-end), inner)))
	}

	return r.styles.List.Render(strings.Join(lines, "\n")), options
}

func (r *Renderer) renderRow(row state.Row, width int) string {
	marker := "  "
	switch {
	case row.Highlighted:
		marker = "› "
	case row.Selected:
		marker = "✓ "
	}
	text := pad(marker+truncate(row.Text, width-2), width)

	switch {
	case row.Disabled:
		return r.styles.OptionDisabled.Render(text)
	case row.Highlighted:
		return r.styles.OptionHighlighted.Render(text)
	case row.Selected:
		return r.styles.OptionSelected.Render(text)
	default:
		return r.styles.Option.Render(text)
	}
}

// truncate shortens s to at most width cells, marking the cut with an ellipsis
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

func pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
