package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the widget
type Styles struct {
	Label             lipgloss.Style
	Button            lipgloss.Style
	ButtonOpen        lipgloss.Style
	Placeholder       lipgloss.Style
	List              lipgloss.Style
	Option            lipgloss.Style
	OptionHighlighted lipgloss.Style
	OptionSelected    lipgloss.Style
	OptionDisabled    lipgloss.Style
	Scroll            lipgloss.Style
	Status            lipgloss.Style
	Help              lipgloss.Style
	Main              lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Label: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Button: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		ButtonOpen: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		Placeholder: lipgloss.NewStyle().Faint(true),
		List: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")),
		Option:            lipgloss.NewStyle(),
		OptionHighlighted: lipgloss.NewStyle().Background(lipgloss.Color("238")).Foreground(lipgloss.Color("226")).Bold(true),
		OptionSelected:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		OptionDisabled:    lipgloss.NewStyle().Faint(true).Strikethrough(true),
		Scroll:            lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Status:            lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Help:              lipgloss.NewStyle().Faint(true),
		Main:              lipgloss.NewStyle().Padding(1, 2),
	}
}
