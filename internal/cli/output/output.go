package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/saradorri/gamestore/internal/domain"
)

var (
	// Color styles for terminal output
	colorError   = lipgloss.Color("9")
	colorWarning = lipgloss.Color("11")
	colorSuccess = lipgloss.Color("10")

	errorStyle   = lipgloss.NewStyle().Foreground(colorError)
	warningStyle = lipgloss.NewStyle().Foreground(colorWarning)
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)
)

// Error prints a highlighted error message
func Error(format string, args ...interface{}) {
	fmt.Println(errorStyle.Render(fmt.Sprintf(format, args...)))
}

// Success prints a confirmation message
func Success(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
}

// Info prints a plain message
func Info(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
}

// Rating renders a rating value colorized by quality: below 3 red, up
// to 4.2 yellow, above that green.
func Rating(value float64) string {
	text := fmt.Sprintf("%.2f", value)
	switch {
	case value < 3.0:
		return errorStyle.Render(text)
	case value <= 4.2:
		return warningStyle.Render(text)
	default:
		return successStyle.Render(text)
	}
}

// Game renders one catalog entry as a display line
func Game(g domain.Game) string {
	return fmt.Sprintf("ID: %d, Title: %s, Price: $%.2f, Rating: %s (%d ratings)",
		g.ID, g.Title, g.Price, Rating(g.Rating), g.RatingCount)
}
