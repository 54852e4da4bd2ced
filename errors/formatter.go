package errors

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/cockroachdb/errors"
	"golang.org/x/term"
)

const (
	// DefaultMaxLineLength is the default maximum line length before wrapping.
	DefaultMaxLineLength = 80

	newline = "\n"

	colorRed   = "#FF0000"
	colorGreen = "#2ECC40"
	colorGray  = "#808080"
)

// FormatterConfig controls error formatting behavior.
type FormatterConfig struct {
	// Verbose enables the context table and the full error chain.
	Verbose bool

	// Color controls color output: "auto", "always", or "never".
	Color string

	// MaxLineLength is the maximum length before wrapping (default: 80).
	MaxLineLength int
}

// DefaultFormatterConfig returns default formatting configuration.
func DefaultFormatterConfig() FormatterConfig {
	return FormatterConfig{
		Verbose:       false,
		Color:         "auto",
		MaxLineLength: DefaultMaxLineLength,
	}
}

// formatContextTable renders the context attached by ErrorBuilder.WithContext
// as a two column table.
func formatContextTable(err error, useColor bool) string {
	rows := contextRows(err)
	if len(rows) == 0 {
		return ""
	}

	t := table.New().
		Border(lipgloss.ThickBorder()).
		Headers("Context", "Value").
		Rows(rows...)

	if useColor {
		t = t.
			BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(colorGray))).
			StyleFunc(func(row, col int) lipgloss.Style {
				style := lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)
				if row == table.HeaderRow {
					return style.Foreground(lipgloss.Color(colorGreen)).Bold(true)
				}
				if col == 0 {
					return style.Foreground(lipgloss.Color(colorGray))
				}
				return style
			})
	}

	return newline + t.String()
}

// Format formats an error for display on stderr.
func Format(err error, config FormatterConfig) string {
	if err == nil {
		return ""
	}

	useColor := shouldUseColor(config.Color)

	errorStyle := lipgloss.NewStyle()
	if useColor {
		errorStyle = errorStyle.Foreground(lipgloss.Color(colorRed))
	}

	var output strings.Builder

	mainMsg := err.Error()
	if len(mainMsg) > config.MaxLineLength && !config.Verbose {
		output.WriteString(errorStyle.Render(wrapText(mainMsg, config.MaxLineLength)))
	} else {
		output.WriteString(errorStyle.Render(mainMsg))
	}

	hints := errors.GetAllHints(err)
	if len(hints) > 0 {
		output.WriteString(newline)
		for _, hint := range hints {
			output.WriteString("    💡 " + hint)
			output.WriteString(newline)
		}
	}

	if config.Verbose {
		contextTable := formatContextTable(err, useColor)
		if contextTable != "" {
			output.WriteString(contextTable)
			output.WriteString(newline)
		}
		output.WriteString(newline)
		output.WriteString(formatStackTrace(err, useColor))
	}

	return output.String()
}

// shouldUseColor determines if color output should be used.
func shouldUseColor(colorMode string) bool {
	switch colorMode {
	case "always":
		return true
	case "never":
		return false
	default:
		return term.IsTerminal(int(os.Stderr.Fd()))
	}
}

// wrapText wraps text to the specified width on word boundaries.
func wrapText(text string, width int) string {
	if width <= 0 {
		width = DefaultMaxLineLength
	}

	var lines []string
	var currentLine strings.Builder

	for _, word := range strings.Fields(text) {
		if currentLine.Len() > 0 && currentLine.Len()+1+len(word) > width {
			lines = append(lines, currentLine.String())
			currentLine.Reset()
		}
		if currentLine.Len() > 0 {
			currentLine.WriteString(" ")
		}
		currentLine.WriteString(word)
	}

	if currentLine.Len() > 0 {
		lines = append(lines, currentLine.String())
	}

	return strings.Join(lines, newline)
}

// formatStackTrace formats the full error chain with stack traces.
func formatStackTrace(err error, useColor bool) string {
	style := lipgloss.NewStyle()
	if useColor {
		style = style.Foreground(lipgloss.Color(colorGray))
	}

	return style.Render(fmt.Sprintf("%+v", err))
}
