package render

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used for a frame.
type Styles struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Header  lipgloss.Style
	Cursor  lipgloss.Style
	Editing lipgloss.Style
	Error   lipgloss.Style
	Status  lipgloss.Style
}

// DefaultStyles builds the standard palette on r. A renderer writing to a
// non-terminal produces plain text.
func DefaultStyles(r *lipgloss.Renderer) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return Styles{
		Title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Label:   r.NewStyle().Bold(true),
		Header:  r.NewStyle().Foreground(lipgloss.Color("245")).Background(lipgloss.Color("236")),
		Cursor:  r.NewStyle().Reverse(true),
		Editing: r.NewStyle().Underline(true),
		Error:   r.NewStyle().Foreground(lipgloss.Color("196")),
		Status:  r.NewStyle().Faint(true),
	}
}
