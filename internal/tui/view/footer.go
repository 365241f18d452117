package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// FooterLines is the number of lines the footer occupies.
const FooterLines = 4

// FooterModel contains content and styles for rendering the footer.
type FooterModel struct {
	InnerW      int
	StatsLine   string
	LegendText  string
	StatusText  string
	HelpText    string
	FooterStyle lipgloss.Style
	StatusStyle lipgloss.Style
	HelpStyle   lipgloss.Style
	Bg          lipgloss.Color
}

// RenderFooter renders the stats, legend, status, and help lines.
func RenderFooter(model FooterModel) string {
	lines := []string{
		fitLine(model.InnerW, model.StatsLine),
		footerLine(model.InnerW, model.FooterStyle, model.LegendText),
		footerLine(model.InnerW, model.StatusStyle, orBlank(model.StatusText)),
		footerLine(model.InnerW, model.HelpStyle, model.HelpText),
	}
	return PlaceBox(model.InnerW, FooterLines, lipgloss.Bottom, strings.Join(lines, "\n"), model.Bg)
}

func footerLine(width int, style lipgloss.Style, content string) string {
	frameW, _ := style.GetFrameSize()
	contentWidth := width - frameW
	if contentWidth < 0 {
		contentWidth = 0
	}
	style = style.Width(contentWidth)
	if contentWidth > 0 {
		content = ansi.Truncate(content, contentWidth, "…")
	}
	return style.Render(content)
}

// fitLine truncates pre-styled content to width.
func fitLine(width int, content string) string {
	if width <= 0 || lipgloss.Width(content) <= width {
		return content
	}
	return ansi.Truncate(content, width, "…")
}

// orBlank keeps an empty line from collapsing the layout.
func orBlank(s string) string {
	if s == "" {
		return " "
	}
	return s
}
