package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
)

var (
	diffHeader  = lipgloss.NewStyle().Bold(true)
	diffHunk    = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))
	diffRemoved = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	diffAdded   = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
)

// ColorizeDiff styles the lines of a unified diff by their marker.
func ColorizeDiff(diff string) string {
	lines := strings.SplitAfter(diff, "\n")
	for i, line := range lines {
		body := strings.TrimSuffix(line, "\n")
		if body == "" {
			continue
		}
		var styled string
		switch {
		case strings.HasPrefix(body, "---"), strings.HasPrefix(body, "+++"):
			styled = diffHeader.Render(body)
		case strings.HasPrefix(body, "@@"):
			styled = diffHunk.Render(body)
		case strings.HasPrefix(body, "-"):
			styled = diffRemoved.Render(body)
		case strings.HasPrefix(body, "+"):
			styled = diffAdded.Render(body)
		default:
			continue
		}
		lines[i] = styled + line[len(body):]
	}
	return strings.Join(lines, "")
}
